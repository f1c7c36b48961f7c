package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/kaelif/QuickLink/internal/models"
)

// ProfileSink pushes edited local profile fields to the remote source.
// Failures are surfaced to the caller as an error to display; nothing
// here is fatal and local state is unaffected either way.
type ProfileSink interface {
	PushProfile(ctx context.Context, profile models.UserProfile) error
}

type SupabaseProfileSink struct {
	baseURL    string
	anonKey    string
	profileID  string
	httpClient *http.Client
}

func NewSupabaseProfileSink(baseURL, anonKey, profileID string) *SupabaseProfileSink {
	return &SupabaseProfileSink{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		profileID:  profileID,
		httpClient: http.DefaultClient,
	}
}

func (s *SupabaseProfileSink) PushProfile(ctx context.Context, profile models.UserProfile) error {
	payload := map[string]any{
		"bio":            profile.Bio,
		"photo_urls":     profile.PhotoURLs,
		"climbing_types": profile.ClimbingTypes,
		"gender":         profile.Gender,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal profile payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/climbers?id=eq.%s", s.baseURL, url.QueryEscape(s.profileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build profile request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.anonKey)
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("push profile: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return nil
}
