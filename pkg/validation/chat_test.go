package validation

import (
	"strings"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestValidateMessage(t *testing.T) {
	v := NewChatRequestValidator()

	if err := v.ValidateMessage("I want to move to Denver"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := v.ValidateMessage(""); err == nil {
		t.Error("Expected error for empty message")
	}
	if err := v.ValidateMessage(strings.Repeat("a", maxMessageLength+1)); err == nil {
		t.Error("Expected error for oversized message")
	}
}

func TestValidateTemperature(t *testing.T) {
	v := NewChatRequestValidator()

	tests := []struct {
		name    string
		temp    *float64
		wantErr bool
	}{
		{name: "absent", temp: nil, wantErr: false},
		{name: "zero", temp: ptr(0), wantErr: false},
		{name: "max", temp: ptr(2), wantErr: false},
		{name: "negative", temp: ptr(-0.1), wantErr: true},
		{name: "too high", temp: ptr(2.1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateTemperature(tt.temp)
			if tt.wantErr && err == nil {
				t.Error("Expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestValidateCoordinates(t *testing.T) {
	v := NewChatRequestValidator()

	tests := []struct {
		name     string
		lat, lon *float64
		wantErr  bool
	}{
		{name: "both absent", lat: nil, lon: nil, wantErr: false},
		{name: "both present", lat: ptr(30.26), lon: ptr(-97.74), wantErr: false},
		{name: "latitude only", lat: ptr(30.26), lon: nil, wantErr: true},
		{name: "longitude only", lat: nil, lon: ptr(-97.74), wantErr: true},
		{name: "latitude out of range", lat: ptr(91), lon: ptr(0), wantErr: true},
		{name: "longitude out of range", lat: ptr(0), lon: ptr(181), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCoordinates(tt.lat, tt.lon)
			if tt.wantErr && err == nil {
				t.Error("Expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestValidateChatRequest(t *testing.T) {
	v := NewChatRequestValidator()

	if err := v.ValidateChatRequest("user-1", "hello", nil, nil, nil); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := v.ValidateChatRequest("", "hello", nil, nil, nil); err == nil {
		t.Error("Expected error for empty user_id")
	}
	if err := v.ValidateChatRequest("user-1", "", nil, nil, nil); err == nil {
		t.Error("Expected error for empty message")
	}
	if err := v.ValidateChatRequest("user-1", "hello", ptr(3), nil, nil); err == nil {
		t.Error("Expected error for out-of-range temperature")
	}
}
