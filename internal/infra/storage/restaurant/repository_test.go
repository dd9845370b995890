package restaurant

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reservely/reservation-service/internal/domain"
)

func TestDecodeDuration(t *testing.T) {
	assert.Equal(t, &domain.Duration{Hours: 1, Minutes: 30}, decodeDuration([]byte(`{"hours":1,"minutes":30}`)))
	assert.Equal(t, &domain.Duration{Minutes: 90}, decodeDuration([]byte(`{"minutes":90}`)))

	assert.Nil(t, decodeDuration(nil))
	assert.Nil(t, decodeDuration([]byte(`"1:30"`)))
	assert.Nil(t, decodeDuration([]byte(`{"hours":0,"minutes":0}`)))
	assert.Nil(t, decodeDuration([]byte(`{"hours":-1,"minutes":30}`)))
}

func TestIntOrDefault(t *testing.T) {
	assert.Equal(t, 2, intOrDefault(sql.NullInt32{}, 2))
	assert.Equal(t, 0, intOrDefault(sql.NullInt32{Int32: 0, Valid: true}, 2))
}
