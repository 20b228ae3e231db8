package roster

import (
	"regexp"
	"strings"
)

// ValidationError: alan adı -> hata mesajı. Tek bir alan bile hatalıysa
// veritabanına hiçbir yazma yapılmaz.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "doğrulama hatası: " + strings.Join(fields, ", ")
}

// Fields: create/update formundan gelen ham alanlar. Telefon form
// değeri olarak string gelir, doğrulamadan sonra sayıya çevrilir.
type Fields struct {
	Name     string
	Branch   string
	Email    string
	Phone    string
	Role     string
	Password string
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// Validate alan kurallarını uygular. requirePassword sadece create'te
// true'dur; update'te boş şifre "mevcut şifreyi koru" demektir ama
// dolu gelen şifre yine uzunluk kuralına tabidir.
func Validate(f Fields, requirePassword bool) ValidationError {
	errs := ValidationError{}

	if len(strings.TrimSpace(f.Name)) < 2 {
		errs["name"] = "İsim en az 2 karakter olmalı"
	}
	if strings.TrimSpace(f.Branch) == "" {
		errs["branch"] = "Şube boş olamaz"
	}
	if !emailRe.MatchString(strings.TrimSpace(f.Email)) {
		errs["email"] = "Geçerli bir email adresi girin"
	}
	if !phoneRe.MatchString(strings.TrimSpace(f.Phone)) {
		errs["phone"] = "Telefon tam 10 haneli olmalı"
	}
	if strings.TrimSpace(f.Role) == "" {
		errs["role"] = "Rol boş olamaz"
	}
	if requirePassword || f.Password != "" {
		if len(f.Password) < 6 {
			errs["password"] = "Şifre en az 6 karakter olmalı"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ConfirmationMatches: silme onayı. Girilen isim, kayıttaki isimle
// boşluklar kırpılıp büyük/küçük harf farkı gözetilmeden karşılaştırılır.
func ConfirmationMatches(typed, actual string) bool {
	return strings.EqualFold(strings.TrimSpace(typed), strings.TrimSpace(actual))
}
