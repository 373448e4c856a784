package schema

import (
	"sort"
	"testing"

	"healthcare-admin/internal/crud"
	"healthcare-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formKeys(f crud.FormState) []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestDoctorFormDataRoundTrip(t *testing.T) {
	bio := "20 years in cardiology"
	d := &entity.Doctor{ID: 3, Name: "Gregory House", Specialty: "Diagnostics", Bio: &bio}

	form := DoctorToFormData(d)
	assert.Equal(t, "Gregory House", form.Get("name"))
	assert.Equal(t, "Diagnostics", form.Get("specialty"))
	assert.Equal(t, bio, form.Get("bio"))

	in, err := ParseDoctorFormData(form)
	require.NoError(t, err)
	require.NotNil(t, in.Name)
	assert.Equal(t, d.Name, *in.Name)
	require.NotNil(t, in.Specialty)
	assert.Equal(t, d.Specialty, *in.Specialty)
	require.NotNil(t, in.Bio)
	assert.Equal(t, bio, *in.Bio)
}

func TestDoctorFormDataNilSeed(t *testing.T) {
	form := DoctorToFormData(nil)
	assert.Equal(t, []string{"bio", "name", "specialty"}, formKeys(form))

	in, err := ParseDoctorFormData(form)
	require.NoError(t, err)
	// name and specialty always ship; blank bio is dropped
	require.NotNil(t, in.Name)
	assert.Equal(t, "", *in.Name)
	require.NotNil(t, in.Specialty)
	assert.Equal(t, "", *in.Specialty)
	assert.Nil(t, in.Bio)
}
