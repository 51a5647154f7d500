package store

import (
	"testing"

	"github.com/MKhiriev/cuide-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListPatientsQuery(t *testing.T) {
	query, args, err := buildListPatientsQuery(nil)
	require.NoError(t, err)
	assert.Contains(t, query, "EXISTS (SELECT 1 FROM messages m WHERE m.patient_id = patients.id AND m.has_alert) AS has_alert")
	assert.NotContains(t, query, "WHERE status")
	assert.Empty(t, args)

	status := models.StatusManual
	query, args, err = buildListPatientsQuery(&status)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE status = $1 ORDER BY id ASC")
	assert.Equal(t, []any{"manual"}, args)
}

func TestBuildUpdatePatientQuery(t *testing.T) {
	name := " Ana "
	goal := 70.0

	query, args, err := buildUpdatePatientQuery(9, models.PatientUpdate{Name: &name, TargetWeight: &goal})
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE patients SET name = $1, peso_meta = $2 WHERE id = $3")
	assert.Equal(t, []any{"Ana", 70.0, int64(9)}, args)
}

func TestBuildUpdatePatientQuery_Empty(t *testing.T) {
	_, _, err := buildUpdatePatientQuery(9, models.PatientUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestBuildSaveMetricsQuery(t *testing.T) {
	query, args, err := buildSaveMetricsQuery(3, []models.ExtractedMetric{{Type: "peso", Value: 80}})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO metrics (patient_id,metric_type,value) VALUES ($1,$2,$3)", query)
	assert.Equal(t, []any{int64(3), "peso", 80.0}, args)
}

func TestBuildSaveValueQuery(t *testing.T) {
	query, args, err := buildSaveValueQuery("accessToken", "jwt")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO session (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP) "+
		"ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at", query)
	assert.Equal(t, []any{"accessToken", "jwt"}, args)
}
