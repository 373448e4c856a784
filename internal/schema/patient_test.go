package schema

import (
	"testing"

	"healthcare-admin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientFormDataRoundTrip(t *testing.T) {
	age := 34
	gender := "Female"
	history := "asthma since 2015"
	p := &entity.Patient{ID: 7, Name: "Ada Lovelace", Age: &age, Gender: &gender, MedicalHistory: &history}

	form := PatientToFormData(p)
	assert.Equal(t, "Ada Lovelace", form.Get("name"))
	assert.Equal(t, "34", form.Get("age"))
	assert.Equal(t, "Female", form.Get("gender"))
	assert.Equal(t, history, form.Get("medicalHistory"))

	in, err := ParsePatientFormData(form)
	require.NoError(t, err)
	require.NotNil(t, in.Name)
	assert.Equal(t, p.Name, *in.Name)
	require.NotNil(t, in.Age)
	assert.Equal(t, age, *in.Age)
	require.NotNil(t, in.Gender)
	assert.Equal(t, gender, *in.Gender)
	require.NotNil(t, in.MedicalHistory)
	assert.Equal(t, history, *in.MedicalHistory)
}

func TestPatientToFormDataNilSeedsAllKeys(t *testing.T) {
	form := PatientToFormData(nil)
	for _, key := range []string{"name", "age", "gender", "medicalHistory"} {
		v, ok := form[key]
		assert.True(t, ok, key)
		assert.Equal(t, "", v, key)
	}
}

func TestParsePatientFormDataBlankOptionalsAreNil(t *testing.T) {
	in, err := ParsePatientFormData(PatientToFormData(nil))
	require.NoError(t, err)

	// name always ships, even blank; blank optionals are dropped so they
	// cannot overwrite stored values
	require.NotNil(t, in.Name)
	assert.Equal(t, "", *in.Name)
	assert.Nil(t, in.Age)
	assert.Nil(t, in.Gender)
	assert.Nil(t, in.MedicalHistory)
}

func TestParsePatientFormDataUnparsableAge(t *testing.T) {
	form := PatientToFormData(nil)
	form["name"] = "Ada"
	form["age"] = "not-a-number"

	in, err := ParsePatientFormData(form)
	require.NoError(t, err)
	assert.Nil(t, in.Age)
}

func TestOptionalInt(t *testing.T) {
	assert.Nil(t, optionalInt(""))
	assert.Nil(t, optionalInt("   "))
	assert.Nil(t, optionalInt("abc"))
	assert.Nil(t, optionalInt("12.5"))

	v := optionalInt(" 42 ")
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	neg := optionalInt("-3")
	require.NotNil(t, neg)
	assert.Equal(t, -3, *neg)
}

func TestPatientFormFieldsGenderOptions(t *testing.T) {
	var found bool
	for _, f := range PatientFormFields() {
		if f.Key != "gender" {
			continue
		}
		found = true
		require.Len(t, f.Options, 3)
		assert.Equal(t, "Male", f.Options[0].Value)
		assert.Equal(t, "Female", f.Options[1].Value)
		assert.Equal(t, "Other", f.Options[2].Value)
	}
	assert.True(t, found)
}
