package impl

import (
	"encoding/json"
	"strconv"
	"strings"

	"swiftauth/internal/domain/entity"
	"swiftauth/internal/domain/service"
)

// attributeExtractor maps a provider's raw profile attributes onto an externalProfile.
type attributeExtractor func(attributes map[string]any) externalProfile

//nolint:gochecknoglobals
var attributeExtractors = map[entity.ProviderType]attributeExtractor{
	entity.ProviderGoogle:   googleAttributes,
	entity.ProviderFacebook: facebookAttributes,
}

// googleAttributes reads OpenID Connect userinfo: the subject is "sub".
func googleAttributes(attributes map[string]any) externalProfile {
	return externalProfile{
		Subject: stringAttribute(attributes, "sub"),
		Email:   stringAttribute(attributes, "email"),
		Name:    stringAttribute(attributes, "name"),
	}
}

// facebookAttributes reads Graph API /me: the subject is "id".
func facebookAttributes(attributes map[string]any) externalProfile {
	return externalProfile{
		Subject: stringAttribute(attributes, "id"),
		Email:   stringAttribute(attributes, "email"),
		Name:    stringAttribute(attributes, "name"),
	}
}

func profileFromOAuthUser(user *service.OAuthUser) externalProfile {
	return externalProfile{
		Subject: strings.TrimSpace(user.ID),
		Email:   strings.TrimSpace(user.Email),
		Name:    user.Name,
	}
}

// stringAttribute tolerates ids decoded as JSON numbers.
func stringAttribute(attributes map[string]any, key string) string {
	switch v := attributes[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}
