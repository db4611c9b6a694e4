package confirm

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// confirmationClaims binds a token to one actor, one operation with its
// parameters, and one set of targets.
type confirmationClaims struct {
	jwt.RegisteredClaims
	Operation string `json:"op"`
	Digest    string `json:"dig"`
}

// bindingDigest hashes the operation, its parameters and the target set.
// Target order does not matter.
func bindingDigest(op domain.Operation, targets []uuid.UUID) string {
	params := op.Parameters()
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	ids := make([]string, len(targets))
	for i, id := range targets {
		ids[i] = id.String()
	}
	slices.Sort(ids)

	var b strings.Builder
	b.WriteString(op.Kind.String())
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%s", k, params[k])
	}
	b.WriteString("|targets=")
	b.WriteString(strings.Join(ids, ","))

	h := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(h[:])
}
