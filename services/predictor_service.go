package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// MacroModelService implements MacroPredictor against the external macro
// prediction endpoint (MODEL_API_URL): a JSON POST of the base64 image that
// answers {protein, carbs, fats, calories?}.
type MacroModelService struct {
	endpoint string
	client   *http.Client
}

func NewMacroModelService() *MacroModelService {
	return &MacroModelService{
		endpoint: os.Getenv("MODEL_API_URL"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MacroModelService) PredictMacros(ctx context.Context, image []byte) (MacroPrediction, error) {
	var pred MacroPrediction

	payload, err := json.Marshal(map[string]string{
		"image": base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return pred, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return pred, fmt.Errorf("failed to build model API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return pred, fmt.Errorf("failed to call model API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return pred, fmt.Errorf("failed to read model API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return pred, fmt.Errorf("model API error %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, &pred); err != nil {
		return pred, fmt.Errorf("failed to parse model API JSON: %w", err)
	}
	return pred, nil
}
