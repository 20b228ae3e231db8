package session

// Session: bir oturumun yetki durumu. Biri bellekte (process ömrü),
// biri diskte (restart'a dayanıklı) olmak üzere iki kopya tutulur;
// ikisi tek başına güvenilmez, her zaman Reconcile ile birleştirilir.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsSuperAdmin    bool   `json:"isSuperAdmin"`
	IsAdmin         bool   `json:"isAdmin"`
	UserID          string `json:"userId,omitempty"`
}

// Reconcile iki kaynaktaki yetki iddialarını OR ile birleştirir:
// kalıcı kopyadaki bir yetki, canlı kopya henüz dolmamış olsa bile
// geçerlidir (sayfa yenileme senaryosu). Super admin ve admin aynı
// anda true olabilir; görünürlük kararlarında super admin önceliklidir.
func Reconcile(live, durable Session) Session {
	s := Session{
		IsAuthenticated: live.IsAuthenticated || durable.IsAuthenticated,
		IsSuperAdmin:    live.IsSuperAdmin || durable.IsSuperAdmin,
		IsAdmin:         live.IsAdmin || durable.IsAdmin,
	}

	// Yetki varsa kimlik doğrulanmış sayılır; tersi tutarsız bir kayıttır
	if s.IsSuperAdmin || s.IsAdmin {
		s.IsAuthenticated = true
	}

	if live.UserID != "" {
		s.UserID = live.UserID
	} else {
		s.UserID = durable.UserID
	}

	return s
}
