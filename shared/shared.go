package shared

import (
	"strconv"
	"strings"

	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == constant.Empty {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ParseID parses a positive record identity. Zero and negatives are rejected
// because the remote service never assigns them.
func ParseID(value string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}
