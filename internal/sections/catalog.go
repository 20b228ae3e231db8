package sections

import "salon-backend/internal/session"

// Dashboard bölüm adları koleksiyon adlarıyla birebir aynıdır.
const Admin = "Admin"

// Her rolün görebildiği temel bölümler, menü sırasıyla.
var base = []string{
	"Booking",
	"Customer",
	"Employee",
	"Products",
	"Services",
	"Shop Branches",
	"Sold_Product",
}

// For: geçerli oturumun gezinebileceği bölümler. "Admin" bölümü sadece
// super admin'e görünür ve listenin başına eklenir.
func For(s session.Session) []string {
	if !s.IsAuthenticated {
		return nil
	}
	if s.IsSuperAdmin {
		out := make([]string, 0, len(base)+1)
		out = append(out, Admin)
		out = append(out, base...)
		return out
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}

// CanNavigate: bölüm listede varsa true. Saf fonksiyondur, durum değiştirmez.
func CanNavigate(s session.Session, name string) bool {
	for _, sec := range For(s) {
		if sec == name {
			return true
		}
	}
	return false
}

// Initial: oturum ilk açıldığında aktif olacak bölüm. Super admin
// doğrudan Admin bölümüne düşer.
func Initial(s session.Session) string {
	secs := For(s)
	if len(secs) == 0 {
		return ""
	}
	return secs[0]
}

// Navigate: izin verilen hedefe geçer, izin yoksa mevcut bölümde kalır.
// Yetkisiz tıklama hata üretmez, görünür bir etkisi olmaz.
func Navigate(s session.Session, current, target string) string {
	if CanNavigate(s, target) {
		return target
	}
	return current
}
