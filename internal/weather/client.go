package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/flood_risk_system/internal/config"
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Client - клиент API метеопредупреждений (MET).
// Успешный ответ без предупреждений трактуется как уровень 0
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *logrus.Logger
}

// NewClient создает новый клиент MET API
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.MetTimeout,
		},
		baseURL: cfg.MetAPIURL,
		token:   cfg.MetAPIKey,
		logger:  logger,
	}
}

type warningResult struct {
	Severity      any `json:"severity"`
	Level         any `json:"level"`
	SeverityLevel any `json:"severity_level"`
}

type warningsResponse struct {
	Results []warningResult `json:"results"`
	Data    []warningResult `json:"data"`
}

// severityToLevel приводит строковую или числовую серьёзность к шкале 0..4
func severityToLevel(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case float64:
		return clampLevel(int(v))
	case int:
		return clampLevel(v)
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if n, err := strconv.Atoi(s); err == nil {
			return clampLevel(n)
		}
		switch s {
		case "red", "emergency", "severe":
			return 4
		case "orange", "warning":
			return 3
		case "amber", "watch":
			return 2
		case "yellow", "advisory", "info", "information":
			return 1
		}
	}
	return 0
}

func clampLevel(n int) int {
	if n < 0 {
		return 0
	}
	if n > 4 {
		return 4
	}
	return n
}

// maxSeverityLevel выбирает максимальный уровень из всех предупреждений
func maxSeverityLevel(results []warningResult) int {
	maxLevel := 0
	for _, r := range results {
		sev := r.Severity
		if sev == nil {
			sev = r.Level
		}
		if sev == nil {
			sev = r.SeverityLevel
		}
		if lv := severityToLevel(sev); lv > maxLevel {
			maxLevel = lv
		}
	}
	return maxLevel
}

// FetchWarningLevel запрашивает предупреждения о дождях по округу за дату.
// Категории датасета перебираются в том порядке, в каком их публикует MET
func (c *Client) FetchWarningLevel(ctx context.Context, districtID string, date time.Time) (int, error) {
	log := c.logger.WithFields(logrus.Fields{
		"client":   "weather",
		"district": districtID,
	})

	day := date.Format("2006-01-02")
	for _, category := range []string{"RAINS", "RAIN"} {
		results, err := c.fetchCategory(ctx, districtID, category, day)
		if err != nil {
			return 0, err
		}
		if len(results) > 0 {
			level := maxSeverityLevel(results)
			log.WithFields(logrus.Fields{
				"category": category,
				"warnings": len(results),
				"level":    level,
			}).Debug("MET warnings fetched")
			return level, nil
		}
	}

	// Провайдер ответил, активных предупреждений нет
	log.Debug("MET reported no active warnings")
	return 0, nil
}

func (c *Client) fetchCategory(ctx context.Context, districtID, category, day string) ([]warningResult, error) {
	params := url.Values{}
	params.Set("datasetid", "WARNING")
	params.Set("datacategoryid", category)
	params.Set("locationid", districtID)
	params.Set("start_date", day)
	params.Set("end_date", day)
	params.Set("lang", "en")

	endpoint := fmt.Sprintf("%s/data?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create MET request: %w", err)
	}
	req.Header.Set("Authorization", "METToken "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("MET request failed: %w: %w", models.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("MET provider returned status %d: %w", resp.StatusCode, models.ErrProviderUnavailable)
	}

	var parsed warningsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode MET response: %w: %w", models.ErrProviderUnavailable, err)
	}

	if len(parsed.Results) > 0 {
		return parsed.Results, nil
	}
	return parsed.Data, nil
}
