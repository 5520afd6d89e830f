package policy

import "encoding/json"

// ParsePolicyBytes from a byte array representing a raw JSON string.
func ParsePolicyBytes(raw []byte) (Policy, error) {
	policy := Policy{}
	err := json.Unmarshal(raw, &policy)
	return policy, err
}

// ParsePolicyString from a raw JSON string.
func ParsePolicyString(raw string) (Policy, error) {
	return ParsePolicyBytes([]byte(raw))
}

// ParsePolicyStringPtr from a raw JSON string pointer.
func ParsePolicyStringPtr(raw *string) (*Policy, error) {
	if raw == nil {
		return nil, nil
	}
	pol, err := ParsePolicyBytes([]byte(*raw))
	return &pol, err
}
