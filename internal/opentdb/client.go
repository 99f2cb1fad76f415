package opentdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultBaseURL is the public OpenTriviaDB endpoint.
	DefaultBaseURL = "https://opentdb.com/api.php"

	defaultAmount = 10
)

// ErrEmptyResults reports a well-formed response that carried no questions.
var ErrEmptyResults = errors.New("opentdb: no results")

// RawQuestion mirrors the OpenTriviaDB question payload. The validate tags
// mark the fields a record cannot be normalized without.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question" validate:"required"`
	CorrectAnswer    string   `json:"correct_answer" validate:"required"`
	IncorrectAnswers []string `json:"incorrect_answers" validate:"required,min=1"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// FetchQuestions pulls amount questions for the given category id. A zero
// category means "any category" and is omitted from the query.
func (c *Client) FetchQuestions(ctx context.Context, amount, category int) ([]RawQuestion, error) {
	if amount <= 0 {
		amount = defaultAmount
	}

	query := url.Values{}
	query.Set("amount", strconv.Itoa(amount))
	if category > 0 {
		query.Set("category", strconv.Itoa(category))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opentdb: fetch questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb: returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("opentdb: decode response: %w", err)
	}

	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb: response_code=%d", payload.ResponseCode)
	}
	if len(payload.Results) == 0 {
		return nil, ErrEmptyResults
	}

	return payload.Results, nil
}
