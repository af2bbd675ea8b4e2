package oauth

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// State is the structured payload carried in the opaque state parameter.
// It records why the flow was started and where to send the user afterwards.
type State struct {
	Process             string `json:"process"`
	OriginalRequestPath string `json:"original_request_path"`
	// Nonce makes every state value unique so it can be matched against the
	// value stored before redirecting.
	Nonce string `json:"nonce,omitempty"`
}

// NewState returns a State with a random nonce.
func NewState(process, originalRequestPath string) State {
	return State{
		Process:             process,
		OriginalRequestPath: originalRequestPath,
		Nonce:               uuid.NewString(),
	}
}

// Encode returns the JSON form suitable for AuthorizationRequest.State.
func (s State) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode state: %w", err)
	}
	return string(b), nil
}

// DecodeState parses a state value produced by State.Encode.
func DecodeState(raw string) (State, error) {
	if raw == "" {
		return State{}, errors.Join(ErrInvalidState, errors.New("empty state"))
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return State{}, errors.Join(ErrInvalidState, fmt.Errorf("decode state: %w", err))
	}
	return s, nil
}
