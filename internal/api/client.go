package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/verse-mate/versemate-tui/pkg/models"
)

// Client is the HTTP client for the VerseMate API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// request makes an HTTP request to the API
func (c *Client) request(method, path string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// parseResponse reads and unmarshals the response body
func parseResponse[T any](resp *http.Response) (T, error) {
	var result T
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, err
	}

	if resp.StatusCode >= 400 {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return result, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
		}
		return result, fmt.Errorf("%s", errResp.Error)
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return result, err
	}

	return result, nil
}

// Metadata methods

// GetBooks returns the full book metadata table (66 entries, canonical order)
func (c *Client) GetBooks() ([]models.BookMetadata, error) {
	resp, err := c.request("GET", "/api/bible/books", nil)
	if err != nil {
		return nil, err
	}

	result, err := parseResponse[*models.BooksResponse](resp)
	if err != nil {
		return nil, err
	}
	return result.Books, nil
}

// GetTopics returns the full topic index
func (c *Client) GetTopics() ([]models.TopicListItem, error) {
	resp, err := c.request("GET", "/api/topics", nil)
	if err != nil {
		return nil, err
	}

	result, err := parseResponse[*models.TopicsResponse](resp)
	if err != nil {
		return nil, err
	}
	return result.Topics, nil
}

// Content methods

// GetChapter returns the verse content of a chapter
func (c *Client) GetChapter(bookID, chapter int) (*models.ChapterContent, error) {
	resp, err := c.request("GET", fmt.Sprintf("/api/bible/books/%d/chapters/%d", bookID, chapter), nil)
	if err != nil {
		return nil, err
	}
	return parseResponse[*models.ChapterContent](resp)
}

// GetTopic returns the body content of a topic
func (c *Client) GetTopic(topicID uuid.UUID) (*models.TopicContent, error) {
	resp, err := c.request("GET", "/api/topics/"+topicID.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseResponse[*models.TopicContent](resp)
}

// GetChapterExplanation returns the AI-generated explanation for a chapter
func (c *Client) GetChapterExplanation(bookID, chapter int) (*models.Explanation, error) {
	resp, err := c.request("GET", fmt.Sprintf("/api/bible/books/%d/chapters/%d/explanation", bookID, chapter), nil)
	if err != nil {
		return nil, err
	}
	return parseResponse[*models.Explanation](resp)
}

// GetTopicExplanation returns the AI-generated explanation for a topic
func (c *Client) GetTopicExplanation(topicID uuid.UUID) (*models.Explanation, error) {
	resp, err := c.request("GET", "/api/topics/"+topicID.String()+"/explanation", nil)
	if err != nil {
		return nil, err
	}
	return parseResponse[*models.Explanation](resp)
}

// Sync methods, called by the offline sync queue

// PutBookmark uploads a bookmark
func (c *Client) PutBookmark(bm models.Bookmark) error {
	return c.put("/api/user/bookmarks", bm)
}

// PutHighlight uploads a highlight
func (c *Client) PutHighlight(h models.Highlight) error {
	return c.put("/api/user/highlights", h)
}

// PutNote uploads a note
func (c *Client) PutNote(n models.Note) error {
	return c.put("/api/user/notes", n)
}

func (c *Client) put(path string, body interface{}) error {
	resp, err := c.request("PUT", path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("sync failed: HTTP %d: %s", resp.StatusCode, string(data))
	}
	return nil
}

// Health checks if the server is available
func (c *Client) Health() error {
	resp, err := c.request("GET", "/health", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("server unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
