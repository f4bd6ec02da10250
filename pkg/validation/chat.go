package validation

import (
	"errors"
	"fmt"
)

// maxMessageLength bounds a single chat message
const maxMessageLength = 10000

// ChatRequestValidator validates chat-related requests
type ChatRequestValidator struct{}

// NewChatRequestValidator creates a new ChatRequestValidator
func NewChatRequestValidator() *ChatRequestValidator {
	return &ChatRequestValidator{}
}

// ValidateMessage validates a chat message
func (v *ChatRequestValidator) ValidateMessage(message string) error {
	if message == "" {
		return errors.New("message cannot be empty")
	}

	if len(message) > maxMessageLength {
		return fmt.Errorf("message must be at most %d characters long, got %d", maxMessageLength, len(message))
	}

	return nil
}

// ValidateTemperature validates an optional sampling temperature
func (v *ChatRequestValidator) ValidateTemperature(temperature *float64) error {
	if temperature == nil {
		return nil
	}

	if *temperature < 0 || *temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %.2f", *temperature)
	}

	return nil
}

// ValidateCoordinates validates an optional latitude/longitude pair.
// Both must be present together.
func (v *ChatRequestValidator) ValidateCoordinates(latitude, longitude *float64) error {
	if latitude == nil && longitude == nil {
		return nil
	}

	if latitude == nil || longitude == nil {
		return errors.New("latitude and longitude must be provided together")
	}

	if *latitude < -90 || *latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90, got %.4f", *latitude)
	}

	if *longitude < -180 || *longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180, got %.4f", *longitude)
	}

	return nil
}

// ValidateChatRequest validates a full chat turn request
func (v *ChatRequestValidator) ValidateChatRequest(userID, message string, temperature, latitude, longitude *float64) error {
	if userID == "" {
		return errors.New("user_id cannot be empty")
	}

	if err := v.ValidateMessage(message); err != nil {
		return err
	}

	if err := v.ValidateTemperature(temperature); err != nil {
		return err
	}

	return v.ValidateCoordinates(latitude, longitude)
}
