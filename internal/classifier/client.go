package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"time"
)

// Client calls the external produce-recognition API. One image in, one
// ranked prediction list out. A call is a single attempt: no retries,
// no caching.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// predictResponse is the wire shape of POST /predict. Confidence
// arrives on a 0-100 scale, price as rupees.
type predictResponse struct {
	Fruit          string   `json:"fruit"`
	Confidence     float64  `json:"confidence"`
	Price          *float64 `json:"price"`
	Unit           string   `json:"unit"`
	TopPredictions []struct {
		Fruit      string  `json:"fruit"`
		Confidence float64 `json:"confidence"`
	} `json:"top_predictions"`
}

// Classify sends the image to {baseURL}/predict as multipart form
// field "image" and returns the parsed result. Any network failure,
// non-2xx status or malformed body yields a *ClassifierError and no
// partial result.
func (c *Client) Classify(ctx context.Context, image []byte, filename string) (*Result, error) {
	if len(image) == 0 {
		return nil, &ClassifierError{Cause: "empty image payload"}
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, &ClassifierError{Cause: "failed to build multipart body: " + err.Error()}
	}
	if _, err := part.Write(image); err != nil {
		return nil, &ClassifierError{Cause: "failed to write image payload: " + err.Error()}
	}
	if err := writer.Close(); err != nil {
		return nil, &ClassifierError{Cause: "failed to finalize multipart body: " + err.Error()}
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/predict",
		&body,
	)
	if err != nil {
		return nil, &ClassifierError{Cause: "failed to create request: " + err.Error()}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ClassifierError{Cause: "prediction request failed: " + err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClassifierError{Cause: "failed to read response: " + err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ClassifierError{
			Cause: fmt.Sprintf("prediction API returned status %d: %s", resp.StatusCode, truncate(raw, 200)),
		}
	}

	var parsed predictResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ClassifierError{Cause: "invalid prediction JSON: " + err.Error()}
	}
	if parsed.Fruit == "" {
		return nil, &ClassifierError{Cause: "prediction response missing label"}
	}
	if parsed.Confidence < 0 || parsed.Confidence > 100 {
		return nil, &ClassifierError{
			Cause: fmt.Sprintf("confidence %.2f outside 0-100 range", parsed.Confidence),
		}
	}

	result := &Result{
		Label:      parsed.Fruit,
		Confidence: parsed.Confidence / 100,
		Unit:       parsed.Unit,
	}
	if parsed.Price != nil && *parsed.Price > 0 {
		result.PricePaise = int64(math.Round(*parsed.Price * 100))
	}

	for _, p := range parsed.TopPredictions {
		result.Predictions = append(result.Predictions, Prediction{
			Label:      p.Fruit,
			Confidence: p.Confidence / 100,
		})
	}
	// The API may omit the ranked list; fall back to the primary label
	// so callers always get at least one entry.
	if len(result.Predictions) == 0 {
		result.Predictions = []Prediction{
			{Label: result.Label, Confidence: result.Confidence},
		}
	}

	return result, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
