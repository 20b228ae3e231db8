package sections

import (
	"reflect"
	"testing"

	"salon-backend/internal/session"
)

var (
	superAdmin = session.Session{IsAuthenticated: true, IsSuperAdmin: true}
	plainAdmin = session.Session{IsAuthenticated: true, IsAdmin: true}
	anonymous  = session.Session{}
)

func TestAdminSectionOnlyForSuperAdmin(t *testing.T) {
	tests := []struct {
		name      string
		sess      session.Session
		wantAdmin bool
	}{
		{"super admin", superAdmin, true},
		{"düz admin", plainAdmin, false},
		{"iki kademe birden (super admin öncelikli)", session.Session{IsAuthenticated: true, IsSuperAdmin: true, IsAdmin: true}, true},
		{"doğrulanmamış", anonymous, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanNavigate(tt.sess, Admin); got != tt.wantAdmin {
				t.Fatalf("CanNavigate(%+v, Admin) = %v, want %v", tt.sess, got, tt.wantAdmin)
			}
		})
	}
}

func TestSectionOrder(t *testing.T) {
	want := []string{"Admin", "Booking", "Customer", "Employee", "Products", "Services", "Shop Branches", "Sold_Product"}
	if got := For(superAdmin); !reflect.DeepEqual(got, want) {
		t.Fatalf("For(superAdmin) = %v, want %v", got, want)
	}

	if got := For(plainAdmin); !reflect.DeepEqual(got, want[1:]) {
		t.Fatalf("For(plainAdmin) = %v, want %v", got, want[1:])
	}

	if got := For(anonymous); got != nil {
		t.Fatalf("For(anonymous) = %v, want nil", got)
	}
}

func TestCanNavigateIsPure(t *testing.T) {
	first := CanNavigate(plainAdmin, "Booking")
	second := CanNavigate(plainAdmin, "Booking")
	if first != second {
		t.Fatal("CanNavigate aynı girdiyle farklı sonuç verdi")
	}

	// Dönen liste çağıranın kopyasıdır; değiştirmek katalogu bozmamalı
	list := For(plainAdmin)
	list[0] = "Bozuldu"
	if !CanNavigate(plainAdmin, "Booking") {
		t.Fatal("dönen slice üzerinden katalog durumu değişti")
	}
}

func TestNavigateRetainsCurrentWhenDenied(t *testing.T) {
	// Düz admin'in Admin bölümüne tıklaması etkisiz kalır
	if got := Navigate(plainAdmin, "Customer", Admin); got != "Customer" {
		t.Fatalf("yetkisiz gezinmede mevcut bölüm korunmalı, got %q", got)
	}
	if got := Navigate(plainAdmin, "Customer", "Services"); got != "Services" {
		t.Fatalf("izinli gezinme hedefe geçmeli, got %q", got)
	}
	if got := Navigate(superAdmin, "Booking", Admin); got != Admin {
		t.Fatalf("super admin Admin bölümüne geçebilmeli, got %q", got)
	}
}

func TestInitial(t *testing.T) {
	if got := Initial(superAdmin); got != Admin {
		t.Fatalf("super admin açılışta Admin bölümüne düşmeli, got %q", got)
	}
	if got := Initial(plainAdmin); got != "Booking" {
		t.Fatalf("düz admin açılışta ilk temel bölüme düşmeli, got %q", got)
	}
	if got := Initial(anonymous); got != "" {
		t.Fatalf("doğrulanmamış oturumda bölüm olmamalı, got %q", got)
	}
}
