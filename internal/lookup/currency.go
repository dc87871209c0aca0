package lookup

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Conversion is the payload of a successful currency conversion.
type Conversion struct {
	RateToUSD float64
	AmountUSD float64
}

// CurrencyClient converts an amount in a local currency to USD through a
// conversion endpoint.
type CurrencyClient struct {
	httpClient *resty.Client
	url        string
}

func NewCurrencyClient(httpClient *resty.Client, url string) *CurrencyClient {
	return &CurrencyClient{
		httpClient: httpClient,
		url:        url,
	}
}

type conversionResponse struct {
	Result *float64 `json:"result"`
	Info   struct {
		Rate *float64 `json:"rate"`
	} `json:"info"`
}

// ConvertToUSD converts the amount from the given currency to USD, or
// reports ok=false if the service could not convert it. Both the converted
// amount and the applied rate must be present in the response.
func (c *CurrencyClient) ConvertToUSD(ctx context.Context, currency string, amount float64) (Conversion, bool) {
	res, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"from":   currency,
			"to":     "USD",
			"amount": strconv.FormatFloat(amount, 'f', -1, 64),
		}).
		Get(c.url)
	if err != nil {
		slog.Debug("currency request failed", "currency", currency, "error", err)
		return Conversion{}, false
	}
	if res.StatusCode() != http.StatusOK {
		slog.Debug("currency returned non-success status", "currency", currency, "status", res.StatusCode())
		return Conversion{}, false
	}

	var body conversionResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		slog.Debug("currency response malformed", "currency", currency, "error", err)
		return Conversion{}, false
	}
	if body.Result == nil || body.Info.Rate == nil {
		return Conversion{}, false
	}
	return Conversion{RateToUSD: *body.Info.Rate, AmountUSD: *body.Result}, true
}
