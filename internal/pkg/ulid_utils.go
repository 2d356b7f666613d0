package pkg

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

func GenerateULIDObject() ulid.ULID {
	entropy := ulid.DefaultEntropy()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

func ParseULID(ulidStr string) (ulid.ULID, error) {
	if ulidStr == "" {
		return ulid.ULID{}, errors.New("ULID string cannot be empty")
	}

	parsedULID, err := ulid.Parse(ulidStr)
	if err != nil {
		return ulid.ULID{}, errors.New("invalid ULID format")
	}

	return parsedULID, nil
}

// SetTimestamps devolve o instante atual em UTC com a precisão de microssegundos do Postgres.
func SetTimestamps() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
