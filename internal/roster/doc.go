package roster

import "salon-backend/internal/models"

// Doc: admin kaydının dashboard'a giden hali. Şifre hash'i hiçbir
// zaman dışarı çıkmaz.
type Doc struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Branch    string `json:"branch"`
	Email     string `json:"email"`
	Phone     int64  `json:"phone"`
	Role      string `json:"role"`
	ImageURL  string `json:"image_url"`
	CreatedAt string `json:"created_at"`
}

func DocOf(a models.Admin) Doc {
	return Doc{
		ID:        a.ID,
		Name:      a.Name,
		Branch:    a.Branch,
		Email:     a.Email,
		Phone:     a.Phone,
		Role:      a.Role,
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// Snapshot koleksiyonun o anki tam halini döndürür; abonelere diff
// değil her zaman bu tam liste gider.
func Snapshot() ([]Doc, error) {
	return snapshotFrom(GormStore{})
}

func snapshotFrom(s Store) ([]Doc, error) {
	admins, err := s.List()
	if err != nil {
		return nil, err
	}
	docs := make([]Doc, 0, len(admins))
	for _, a := range admins {
		docs = append(docs, DocOf(a))
	}
	return docs, nil
}
