package school

import "testing"

func TestParseSchoolRowsMapsByHeader(t *testing.T) {
	rows := [][]string{
		{"ILCE_ADI", "OKUL_ADI", "IL_ADI", "ADRES", "TELEFON", "WEB_ADRES"},
		{"Kadıköy", "Atatürk İlkokulu", "İstanbul", "Bağdat Cd. 1", "0216", "okul.example"},
		{"Üsküdar", "Cumhuriyet Ortaokulu", "İstanbul", "", "", ""},
	}

	schools := parseSchoolRows(rows)
	if len(schools) != 2 {
		t.Fatalf("expected 2 schools got %d", len(schools))
	}
	if schools[0].Name != "Atatürk İlkokulu" || schools[0].District != "Kadıköy" || schools[0].Province != "İstanbul" {
		t.Fatalf("header mapping broken: %+v", schools[0])
	}
	if schools[0].Address != "Bağdat Cd. 1" || schools[0].Phone != "0216" || schools[0].Website != "okul.example" {
		t.Fatalf("header mapping broken: %+v", schools[0])
	}
}

func TestParseSchoolRowsSkipsBlankRows(t *testing.T) {
	rows := [][]string{
		{"OKUL_ADI", "ILCE_ADI"},
		{"", ""},
		{"Fatih Lisesi", "Fatih"},
		{},
	}

	schools := parseSchoolRows(rows)
	if len(schools) != 1 {
		t.Fatalf("expected 1 school got %d", len(schools))
	}
	if schools[0].Name != "Fatih Lisesi" {
		t.Fatalf("unexpected school %+v", schools[0])
	}
}

func TestParseSchoolRowsUnknownHeadersProduceEmptyFields(t *testing.T) {
	// başlıklar doğrulanmaz: eşleşmeyen kolonlar sessizce boş alan üretir
	rows := [][]string{
		{"SCHOOL", "DISTRICT"},
		{"Some School", "Some District"},
	}

	schools := parseSchoolRows(rows)
	if len(schools) != 0 {
		t.Fatalf("expected no parsable schools got %d", len(schools))
	}
}

func TestParseSchoolRowsShortRows(t *testing.T) {
	rows := [][]string{
		{"OKUL_ADI", "ILCE_ADI", "ADRES"},
		{"Gazi İlkokulu"},
	}

	schools := parseSchoolRows(rows)
	if len(schools) != 1 {
		t.Fatalf("expected 1 school got %d", len(schools))
	}
	if schools[0].District != "" || schools[0].Address != "" {
		t.Fatalf("short row should leave missing columns empty: %+v", schools[0])
	}
}
