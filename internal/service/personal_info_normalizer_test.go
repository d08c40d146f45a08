package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const richPayload = `{
	"id": "A1",
	"externalUserId": "issuer-7",
	"email": "root@example.com",
	"info": {
		"firstName": "Jane",
		"lastName": "Doe",
		"dob": "1990-04-01",
		"nationality": "DEU",
		"idNumber": "C01X00T47",
		"addresses": [
			{"street": "Unter den Linden 1", "town": "Berlin", "state": "BE", "postCode": "10117", "country": "DEU"}
		]
	}
}`

const thinPayload = `{
	"applicantId": "A1",
	"applicant": {
		"info": {
			"first_name": "Jane",
			"surname": "Doe",
			"birthDate": "1990-04-01"
		}
	}
}`

func TestNormalize_RichShape(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	info := n.Normalize("A1", []byte(richPayload))
	require.NotNil(t, info)

	assert.Equal(t, "A1", info.ApplicantID)
	assert.Equal(t, "Jane", *info.FirstName)
	assert.Equal(t, "Doe", *info.LastName)
	assert.Equal(t, "1990-04-01", *info.DOB)
	assert.Equal(t, "DEU", *info.Nationality)
	assert.Equal(t, "C01X00T47", *info.GovIDNumber)
	assert.Equal(t, "root@example.com", *info.Email, "contact falls back to payload root")
	assert.Nil(t, info.MiddleName)
}

func TestNormalize_ThinShapeAliases(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	info := n.Normalize("A1", []byte(thinPayload))
	require.NotNil(t, info)

	assert.Equal(t, "Jane", *info.FirstName, "first_name alias")
	assert.Equal(t, "Doe", *info.LastName, "surname alias")
	assert.Equal(t, "1990-04-01", *info.DOB, "birthDate alias")
	assert.Nil(t, info.Nationality)
}

func TestNormalize_AliasPriority(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	// Both aliases present: the first in the table wins.
	payload := `{"info": {"city": "x", "firstName": "Primary", "givenName": "Secondary"}}`
	info := n.Normalize("A1", []byte(payload))
	require.NotNil(t, info)
	assert.Equal(t, "Primary", *info.FirstName)
}

func TestNormalize_EmptyAndMalformed(t *testing.T) {
	n := NewPersonalInfoNormalizer()

	assert.Nil(t, n.Normalize("A1", []byte(`{}`)), "no info block")
	assert.Nil(t, n.Normalize("A1", []byte(`{"info": {}}`)), "empty info block")
	assert.Nil(t, n.Normalize("A1", []byte(`{"info": {"firstName": "   "}}`)), "whitespace-only values")
	assert.Nil(t, n.Normalize("A1", []byte(`not json`)), "malformed payload")
	assert.Nil(t, n.Normalize("A1", []byte(`[]`)), "non-object payload")
}

func TestNormalize_NonStringFieldsIgnored(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	info := n.Normalize("A1", []byte(`{"info": {"firstName": 42, "lastName": "Doe"}}`))
	require.NotNil(t, info)
	assert.Nil(t, info.FirstName)
	assert.Equal(t, "Doe", *info.LastName)
}

func TestNormalizeAddress_RichShape(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	addr := n.NormalizeAddress("A1", []byte(richPayload))
	require.NotNil(t, addr)

	assert.True(t, addr.IsPrimary)
	assert.Equal(t, "Unter den Linden 1", *addr.Street)
	assert.Equal(t, "Berlin", *addr.City, "town alias")
	assert.Equal(t, "BE", *addr.State)
	assert.Equal(t, "10117", *addr.PostalCode, "postCode alias")
	assert.Equal(t, "DEU", *addr.Country)
}

func TestNormalizeAddress_FlatShape(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	payload := `{"applicant": {"address": {"locality": "Hamburg", "zip": "20095"}}}`
	addr := n.NormalizeAddress("A1", []byte(payload))
	require.NotNil(t, addr)

	assert.Equal(t, "Hamburg", *addr.City, "locality alias")
	assert.Equal(t, "20095", *addr.PostalCode, "zip alias")
	assert.Nil(t, addr.Street)
}

func TestNormalizeAddress_NoAddress(t *testing.T) {
	n := NewPersonalInfoNormalizer()
	assert.Nil(t, n.NormalizeAddress("A1", []byte(thinPayload)))
	assert.Nil(t, n.NormalizeAddress("A1", []byte(`{"info": {"addresses": []}}`)))
}
