package roster

import "testing"

func validFields() Fields {
	return Fields{
		Name:     "Ayşe Yılmaz",
		Branch:   "Kadıköy",
		Email:    "ayse@stylehaven.com",
		Phone:    "5551234567",
		Role:     "Kuaför",
		Password: "gizli-sifre",
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	f := Fields{
		Name:     "A",
		Branch:   "X",
		Email:    "bad",
		Phone:    "123",
		Role:     "staff",
		Password: "short",
	}

	errs := Validate(f, true)
	if errs == nil {
		t.Fatal("hatalı form doğrulamadan geçmemeli")
	}

	for _, key := range []string{"name", "email", "phone", "password"} {
		if _, ok := errs[key]; !ok {
			t.Fatalf("%q alanı için hata beklenir, errs=%v", key, errs)
		}
	}
	if _, ok := errs["branch"]; ok {
		t.Fatalf("dolu branch alanı hata üretmemeli, errs=%v", errs)
	}
	if _, ok := errs["role"]; ok {
		t.Fatalf("dolu role alanı hata üretmemeli, errs=%v", errs)
	}
}

func TestValidateAcceptsValidFields(t *testing.T) {
	if errs := Validate(validFields(), true); errs != nil {
		t.Fatalf("geçerli form hata üretmemeli: %v", errs)
	}
}

func TestValidatePhoneExactlyTenDigits(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"5551234567", true},
		{"555123456", false},   // 9 hane
		{"55512345678", false}, // 11 hane
		{"555123456a", false},
		{"", false},
	}

	for _, tt := range tests {
		f := validFields()
		f.Phone = tt.phone
		errs := Validate(f, true)
		if tt.ok && errs != nil {
			t.Fatalf("phone=%q geçerli olmalı, errs=%v", tt.phone, errs)
		}
		if !tt.ok {
			if _, found := errs["phone"]; !found {
				t.Fatalf("phone=%q reddedilmeli, errs=%v", tt.phone, errs)
			}
		}
	}
}

func TestValidatePasswordOptionalOnUpdate(t *testing.T) {
	f := validFields()
	f.Password = ""

	// Update modunda boş şifre "mevcut şifreyi koru" demektir
	if errs := Validate(f, false); errs != nil {
		t.Fatalf("update'te boş şifre hata üretmemeli: %v", errs)
	}

	// Create modunda şifre zorunludur
	if errs := Validate(f, true); errs == nil {
		t.Fatal("create'te boş şifre reddedilmeli")
	}

	// Dolu gelen kısa şifre update'te de reddedilir
	f.Password = "kisa"
	errs := Validate(f, false)
	if _, ok := errs["password"]; !ok {
		t.Fatalf("kısa şifre update'te de reddedilmeli, errs=%v", errs)
	}
}

func TestConfirmationMatches(t *testing.T) {
	tests := []struct {
		typed  string
		actual string
		want   bool
	}{
		{"john smith", "John Smith", true},
		{"  John Smith  ", "John Smith", true},
		{"JOHN SMITH", "john smith", true},
		{"john smit", "John Smith", false},
		{"", "John Smith", false},
	}

	for _, tt := range tests {
		if got := ConfirmationMatches(tt.typed, tt.actual); got != tt.want {
			t.Fatalf("ConfirmationMatches(%q, %q) = %v, want %v", tt.typed, tt.actual, got, tt.want)
		}
	}
}
