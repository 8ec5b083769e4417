package utils

import (
	"context"
	"testing"
)

func TestGetUserIDFromContext(t *testing.T) {
	t.Run("value present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

		userID, ok := GetUserIDFromContext(ctx)
		if !ok {
			t.Fatal("expected ok == true")
		}
		if userID != 42 {
			t.Errorf("expected 42, got %d", userID)
		}
	})

	t.Run("value missing", func(t *testing.T) {
		_, ok := GetUserIDFromContext(context.Background())
		if ok {
			t.Error("expected ok == false for empty context")
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")

		_, ok := GetUserIDFromContext(ctx)
		if ok {
			t.Error("expected ok == false for non-int64 value")
		}
	})
}

func TestContextKeyString(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("unexpected key string: %s", UserIDCtxKey.String())
	}
}
