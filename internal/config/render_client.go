package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	renderPageSize = 100
	renderTimeout  = 30 * time.Second
)

// SecretStorage fornece credenciais mantidas fora do código e do ambiente
type SecretStorage interface {
	ListSecrets(ctx context.Context, serviceID string) (map[string]string, error)
}

type RenderClient struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

type renderSecretFile struct {
	SecretFile struct {
		Content string `json:"content"`
		Name    string `json:"name"`
	} `json:"secretFile"`
	Cursor string `json:"cursor"`
}

func NewRenderClient(config *Config) *RenderClient {
	return &RenderClient{
		APIKey:  config.Render.APIKey,
		BaseURL: strings.TrimSuffix(config.Render.BaseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: renderTimeout,
		},
	}
}

// ListSecrets retorna todos os secret files do serviço indexados pelo nome, seguindo o cursor da API
func (c *RenderClient) ListSecrets(ctx context.Context, serviceID string) (map[string]string, error) {
	secretsMap := make(map[string]string)

	cursor := ""
	for {
		page, err := c.listSecretsPage(ctx, serviceID, cursor)
		if err != nil {
			return nil, err
		}

		for _, sf := range page {
			// secret files costumam terminar com quebra de linha
			secretsMap[sf.SecretFile.Name] = strings.TrimSpace(sf.SecretFile.Content)
		}

		if len(page) < renderPageSize || page[len(page)-1].Cursor == "" {
			return secretsMap, nil
		}
		cursor = page[len(page)-1].Cursor
	}
}

func (c *RenderClient) listSecretsPage(ctx context.Context, serviceID, cursor string) ([]renderSecretFile, error) {
	query := url.Values{"limit": []string{strconv.Itoa(renderPageSize)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	endpoint := fmt.Sprintf("%s/services/%s/secret-files?%s", c.BaseURL, url.PathEscape(serviceID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: erro ao consultar o Render: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("config: error list secrets (status %d): %s", resp.StatusCode, body)
	}

	var page []renderSecretFile
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("config: resposta inválida do Render: %w", err)
	}

	return page, nil
}
