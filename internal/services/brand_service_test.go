package services

import (
	"context"
	"strings"
	"testing"

	"github.com/admaster/backend/internal/apperr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestClampDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short passes through", in: "A small shop.", want: "A small shop."},
		{name: "exactly at the cap", in: strings.Repeat("a", 500), want: strings.Repeat("a", 500)},
		{name: "over the cap", in: strings.Repeat("b", 501), want: strings.Repeat("b", 500)},
		{name: "multibyte counted as runes", in: strings.Repeat("ю", 600), want: strings.Repeat("ю", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampDescription(tt.in); got != tt.want {
				t.Errorf("clampDescription() len = %d, want %d", len([]rune(got)), len([]rune(tt.want)))
			}
		})
	}
}

func TestUpdateBrandRejectsLongDescription(t *testing.T) {
	s := &BrandService{log: zap.NewNop()}
	long := strings.Repeat("x", 501)

	_, err := s.Update(context.Background(), "user_1", uuid.New(), UpdateBrandInput{
		Description: &long,
	})
	if err == nil {
		t.Fatal("expected error for 501-character description")
	}
	if e, ok := apperr.As(err); !ok || e.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %v, want VALIDATION_ERROR", err)
	}
}
