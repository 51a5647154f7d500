// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestProfessionalIDCtxKey(t *testing.T) {
	if ProfessionalIDCtxKey.String() != "professionalID" {
		t.Errorf("expected 'professionalID', got '%s'", ProfessionalIDCtxKey.String())
	}
}

func TestGetProfessionalIDFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), ProfessionalIDCtxKey, int64(42))

	id, ok := GetProfessionalIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}

func TestGetProfessionalIDFromContext_Missing(t *testing.T) {
	if _, ok := GetProfessionalIDFromContext(context.Background()); ok {
		t.Fatal("expected ok=false for empty context")
	}
}

func TestGetProfessionalIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ProfessionalIDCtxKey, "42")
	if _, ok := GetProfessionalIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for string value")
	}
}
