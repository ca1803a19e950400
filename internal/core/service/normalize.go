package service

import (
	"encoding/json"
	"strconv"

	"github.com/orientavoc/orientation-platform/internal/core/domain"
)

// NormalizeUser decodes a persisted user blob into a domain.User regardless
// of which backend naming convention produced it. The platform backend has
// emitted Spanish, English and camelCase field names at different times, so
// this is the one place where the fallback chains live.
//
// Priority per field (first non-empty wins):
//
//	id:          id, _id, userId, usuario_id
//	email:       email, correo, mail
//	name:        name, nombre, fullName, full_name
//	role:        role, rol
//	groups:      groups, grupos
//	permissions: permissions, permisos
func NormalizeUser(raw []byte) (*domain.User, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:          firstString(fields, "id", "_id", "userId", "usuario_id"),
		Email:       firstString(fields, "email", "correo", "mail"),
		Name:        firstString(fields, "name", "nombre", "fullName", "full_name"),
		Role:        firstString(fields, "role", "rol"),
		Groups:      firstStringList(fields, "groups", "grupos"),
		Permissions: firstStringList(fields, "permissions", "permisos"),
		Active:      true,
	}
	if b, ok := fields["active"]; ok {
		_ = json.Unmarshal(b, &u.Active)
	}
	return u, nil
}

// firstString returns the first key that decodes to a non-empty string.
// Numeric ids are accepted and rendered in decimal.
func firstString(fields map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		b, ok := fields[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(b, &s); err == nil && s != "" {
			return s
		}
		var n float64
		if err := json.Unmarshal(b, &n); err == nil {
			return strconv.FormatInt(int64(n), 10)
		}
	}
	return ""
}

func firstStringList(fields map[string]json.RawMessage, keys ...string) []string {
	for _, k := range keys {
		b, ok := fields[k]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(b, &list); err == nil && list != nil {
			return list
		}
	}
	return nil
}
