package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-08-03"))
	assert.False(t, IsValidDate("03-08-2026"))
	assert.False(t, IsValidDate("2026-13-01"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("09:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:00:00"))
	assert.False(t, IsValidTimeOfDay(""))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("jane.doe"))
	assert.True(t, IsValidUsername("user_01"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("has space"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidEmployeeNo(t *testing.T) {
	assert.True(t, IsValidEmployeeNo("EMP-001"))
	assert.True(t, IsValidEmployeeNo("A1"))
	assert.False(t, IsValidEmployeeNo("emp-001"))
	assert.False(t, IsValidEmployeeNo(""))
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password is required"},
	}

	m := errs.ToMap()
	assert.Equal(t, "username is required", m["username"])
	assert.Equal(t, "password is required", m["password"])

	var target ValidationErrors
	assert.True(t, errors.As(error(errs), &target))
}
