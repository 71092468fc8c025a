package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"pets_backend/internal/feature/petvision/domain/entity"
	"pets_backend/internal/feature/petvision/usecase"
)

// ErrAPI はモックと期待値の間で共有されるセンチネルエラーです。
var ErrAPI = errors.New("api error")

// mockLabelDetector はLabelDetectorインターフェースのモック実装です。
type mockLabelDetector struct {
	DetectLabelsFunc  func(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
	DetectLabelsCalls int
}

func (m *mockLabelDetector) DetectLabels(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error) {
	m.DetectLabelsCalls++
	if m.DetectLabelsFunc != nil {
		return m.DetectLabelsFunc(ctx, imageData)
	}
	return nil, errors.New("DetectLabelsFunc is not implemented")
}

// mockCareAdvisor はCareAdvisorインターフェースのモック実装です。
type mockCareAdvisor struct {
	AdviseFunc  func(ctx context.Context, prompt string) (string, error)
	AdviseCalls int
}

func (m *mockCareAdvisor) Advise(ctx context.Context, prompt string) (string, error) {
	m.AdviseCalls++
	if m.AdviseFunc != nil {
		return m.AdviseFunc(ctx, prompt)
	}
	return "", errors.New("AdviseFunc is not implemented")
}

// fakeLimiter は待機しないレートリミッターのフェイク実装です。
type fakeLimiter struct {
	WaitCalls int
}

func (f *fakeLimiter) WaitIfNeeded() {
	f.WaitCalls++
}

func TestPetVisionUsecase_DetectLabels(t *testing.T) {
	ctx := context.Background()
	expectedLabels := []entity.DetectedLabel{
		{Name: "Dog", Confidence: 0.97},
		{Name: "Labrador Retriever", Confidence: 0.89},
	}

	testCases := []struct {
		name           string
		imageData      []byte
		mockFunc       func(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error)
		expectedLabels []entity.DetectedLabel
		expectedErr    string
	}{
		{
			name:      "success: labels detected",
			imageData: []byte("fake-image-data"),
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error) {
				return expectedLabels, nil
			},
			expectedLabels: expectedLabels,
		},
		{
			name:        "error: empty image data",
			imageData:   []byte{},
			expectedErr: "image data is empty",
		},
		{
			name:        "error: image too large",
			imageData:   make([]byte, usecase.MaxImageSize+1),
			expectedErr: "image size exceeds maximum",
		},
		{
			name:      "error: api returns error",
			imageData: []byte("fake-image-data"),
			mockFunc: func(ctx context.Context, imageData []byte) ([]entity.DetectedLabel, error) {
				return nil, ErrAPI
			},
			expectedErr: ErrAPI.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detector := &mockLabelDetector{DetectLabelsFunc: tc.mockFunc}
			advisor := &mockCareAdvisor{}
			limiter := &fakeLimiter{}
			uc := usecase.NewPetVisionUsecase(detector, advisor, limiter)

			labels, err := uc.DetectLabels(ctx, tc.imageData)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err.Error())
				}
				// Validation failures never consume rate-limit budget
				if detector.DetectLabelsCalls == 0 && limiter.WaitCalls != 0 {
					t.Error("limiter should not be consulted before validation passes")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(labels, tc.expectedLabels) {
				t.Errorf("result mismatch: got %v, want %v", labels, tc.expectedLabels)
			}
			if limiter.WaitCalls != 1 {
				t.Errorf("expected one limiter wait, got %d", limiter.WaitCalls)
			}
		})
	}
}

func TestPetVisionUsecase_AdviseCare(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name            string
		breed           string
		mockFunc        func(ctx context.Context, prompt string) (string, error)
		expectedSummary string
		expectedErr     string
	}{
		{
			name:  "success: advice generated",
			breed: "Labrador Retriever",
			mockFunc: func(ctx context.Context, prompt string) (string, error) {
				if !strings.Contains(prompt, "Labrador Retriever") {
					t.Errorf("prompt should mention the breed, got %q", prompt)
				}
				return "1. Daily exercise...", nil
			},
			expectedSummary: "1. Daily exercise...",
		},
		{
			name:        "error: empty breed",
			breed:       "",
			expectedErr: "breed is required",
		},
		{
			name:        "error: breed too long",
			breed:       strings.Repeat("a", usecase.MaxBreedLength+1),
			expectedErr: "breed exceeds maximum length",
		},
		{
			name:        "error: breed with invalid characters",
			breed:       "poodle; DROP TABLE pets",
			expectedErr: "breed contains invalid characters",
		},
		{
			name:  "error: api returns error",
			breed: "Labrador Retriever",
			mockFunc: func(ctx context.Context, prompt string) (string, error) {
				return "", ErrAPI
			},
			expectedErr: ErrAPI.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			detector := &mockLabelDetector{}
			advisor := &mockCareAdvisor{AdviseFunc: tc.mockFunc}
			limiter := &fakeLimiter{}
			uc := usecase.NewPetVisionUsecase(detector, advisor, limiter)

			result, err := uc.AdviseCare(ctx, tc.breed)

			if tc.expectedErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tc.expectedErr)
				}
				if !strings.Contains(err.Error(), tc.expectedErr) {
					t.Fatalf("expected error containing %q, got %q", tc.expectedErr, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Breed != tc.breed {
				t.Errorf("breed mismatch: got %q, want %q", result.Breed, tc.breed)
			}
			if result.Summary != tc.expectedSummary {
				t.Errorf("summary mismatch: got %q, want %q", result.Summary, tc.expectedSummary)
			}
			if limiter.WaitCalls != 1 {
				t.Errorf("expected one limiter wait, got %d", limiter.WaitCalls)
			}
		})
	}
}
