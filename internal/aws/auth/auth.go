package auth

import "fmt"

var ErrUnauthorized = fmt.Errorf("unauthorized")

// CallerId extracts the "sub" claim set by an API Gateway JWT authorizer.
func CallerId(authorizer map[string]interface{}) (string, error) {
	jwt, ok := authorizer["jwt"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: no jwt", ErrUnauthorized)
	}
	claims, ok := jwt["claims"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: no authorizer claims", ErrUnauthorized)
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("%w: invalid sub", ErrUnauthorized)
	}
	return sub, nil
}
