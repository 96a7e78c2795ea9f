package utils

import (
	"errors"
	"time"

	"madrasa/config"
	"madrasa/models"
	"madrasa/store"

	"github.com/go-resty/resty/v2"
)

// Translator calls the configured machine-translation API and memoizes
// results in the translation cache. The authoring UI uses it to prefill
// Arabic/Hebrew override fields from the English base text.
type Translator struct {
	store  *store.Store
	client *resty.Client
}

func NewTranslator(s *store.Store) *Translator {
	client := resty.New().
		SetBaseURL(config.AppConfig.TranslateApiURL).
		SetTimeout(10 * time.Second)
	if config.AppConfig.TranslateApiKey != "" {
		client.SetAuthToken(config.AppConfig.TranslateApiKey)
	}
	return &Translator{store: s, client: client}
}

type translateAPIResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate returns the cached translation when present, otherwise calls the
// external API and caches the result.
func (t *Translator) Translate(text, sourceLang, targetLang string, context *string) (string, error) {
	cached, err := t.store.GetCachedTranslation(text, sourceLang, targetLang)
	if err != nil {
		return "", err
	}
	if cached != nil {
		return cached.Translation, nil
	}

	if config.AppConfig.TranslateApiURL == "" {
		return "", errors.New("translation service not configured")
	}

	var result translateAPIResponse
	resp, err := t.client.R().
		SetBody(map[string]string{
			"q":      text,
			"source": sourceLang,
			"target": targetLang,
			"format": "text",
		}).
		SetResult(&result).
		Post("/translate")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", errors.New("translation service error: " + resp.Status())
	}

	row := &models.TranslationCache{
		SourceText:  text,
		SourceLang:  sourceLang,
		TargetLang:  targetLang,
		Translation: result.TranslatedText,
		Context:     context,
	}
	if err := t.store.CacheTranslation(row); err != nil {
		return "", err
	}

	return result.TranslatedText, nil
}
