package util

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadPlaceRecordsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"id": 3,
			"nama_tempat": "Curug Cipendok",
			"kategori": "Air terjun",
			"alamat": "Karangtengah, Cilongok",
			"jam_buka": "07:00",
			"jam_tutup": "17:00",
			"htm": 15000,
			"link_gmaps": "https://maps.example/cipendok",
			"link_foto": "cipendok.jpg"
		}
	]`
	tempFile := createTempFile(t, content)

	// Act
	records, err := ReadPlaceRecordsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ID != 3 {
		t.Errorf("Expected ID 3, got %d", rec.ID)
	}
	if rec.Name != "Curug Cipendok" {
		t.Errorf("Expected Name 'Curug Cipendok', got %s", rec.Name)
	}
	if rec.Price != 15000 {
		t.Errorf("Expected Price 15000, got %d", rec.Price)
	}
	if rec.OpensAt != "07:00" || rec.ClosesAt != "17:00" {
		t.Errorf("Unexpected hours %q - %q", rec.OpensAt, rec.ClosesAt)
	}
}

func TestReadPlaceRecordsFromJSON_FileNotFound(t *testing.T) {
	_, err := ReadPlaceRecordsFromJSON(filepath.Join(t.TempDir(), "missing.json"))

	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}
}

func TestReadPlaceRecordsFromJSON_InvalidJSON(t *testing.T) {
	tempFile := createTempFile(t, `{"id": "not a list"`)

	_, err := ReadPlaceRecordsFromJSON(tempFile)

	if err == nil {
		t.Fatal("Expected an error for invalid JSON, got nil")
	}
}
