package model

import (
	"fmt"
	"strings"

	"hotel/shared/constant"
	"hotel/shared/failure"
)

// Kind is one of the three record kinds the back office edits.
type Kind string

const (
	KindGuest   Kind = constant.ResourceGuest
	KindRoom    Kind = constant.ResourceRoom
	KindBooking Kind = constant.ResourceBooking
)

var Kinds = []Kind{KindGuest, KindRoom, KindBooking}

var kindAliases = map[string]Kind{
	"guest":    KindGuest,
	"guests":   KindGuest,
	"room":     KindRoom,
	"rooms":    KindRoom,
	"booking":  KindBooking,
	"bookings": KindBooking,
}

// ParseKind accepts the remote resource names and their English aliases.
func ParseKind(value string) (Kind, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	kind := Kind(value)
	if kind.Valid() {
		return kind, nil
	}

	if alias, ok := kindAliases[value]; ok {
		return alias, nil
	}

	return "", failure.BadRequestFromString(fmt.Sprintf("unknown record kind %q", value)) //nolint:wrapcheck
}

func (k Kind) Valid() bool {
	switch k {
	case KindGuest, KindRoom, KindBooking:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
