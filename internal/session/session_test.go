package session

import "testing"

func TestReconcileOrMerge(t *testing.T) {
	tests := []struct {
		name    string
		live    Session
		durable Session
		want    Session
	}{
		{
			name: "iki kopya da boş",
			want: Session{},
		},
		{
			name:    "sadece kalıcı kopya dolu (reload senaryosu)",
			durable: Session{IsAuthenticated: true, IsSuperAdmin: true},
			want:    Session{IsAuthenticated: true, IsSuperAdmin: true},
		},
		{
			name: "canlı kopya kalıcı yetkiyi düşüremez",
			live: Session{IsAuthenticated: false},
			durable: Session{
				IsAuthenticated: true,
				IsAdmin:         true,
			},
			want: Session{IsAuthenticated: true, IsAdmin: true},
		},
		{
			name:    "iki kademe aynı anda true kalabilir",
			live:    Session{IsAuthenticated: true, IsAdmin: true},
			durable: Session{IsAuthenticated: true, IsSuperAdmin: true},
			want:    Session{IsAuthenticated: true, IsSuperAdmin: true, IsAdmin: true},
		},
		{
			name:    "yetki varsa kimlik doğrulanmış sayılır",
			durable: Session{IsSuperAdmin: true},
			want:    Session{IsAuthenticated: true, IsSuperAdmin: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(tt.live, tt.durable)
			if got != tt.want {
				t.Fatalf("Reconcile(%+v, %+v) = %+v, want %+v", tt.live, tt.durable, got, tt.want)
			}
		})
	}
}

func TestReconcileUserID(t *testing.T) {
	live := Session{IsAuthenticated: true, UserID: "7"}
	durable := Session{IsAuthenticated: true, UserID: "9"}

	if got := Reconcile(live, durable); got.UserID != "7" {
		t.Fatalf("canlı kopyanın UserID'si öncelikli olmalı, got %q", got.UserID)
	}
	if got := Reconcile(Session{}, durable); got.UserID != "9" {
		t.Fatalf("canlı kopya boşken kalıcı UserID kullanılmalı, got %q", got.UserID)
	}
}
