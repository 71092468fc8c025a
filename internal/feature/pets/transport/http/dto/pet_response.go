package dto

import "pets_backend/internal/feature/pets/usecase"

// ListedPetResponse は一覧取得結果の1件を表します。
// ownerはプライバシー保護のため省略形の表示名のみ公開されます（オーナー不在時はnull）。
type ListedPetResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	IsSterilized bool    `json:"isSterilized"`
	Owner        *string `json:"owner"`
}

// ListPetsResponse はGET /petsのレスポンスボディを表します。
// totalはページングを無視した、フィルタ適用後の総件数です。
type ListPetsResponse struct {
	Pets  []ListedPetResponse `json:"pets"`
	Total int64               `json:"total"`
}

// NewListPetsResponse はユースケースの一覧結果からレスポンスを生成します。
func NewListPetsResponse(listed []usecase.ListedPet, total int64) ListPetsResponse {
	pets := make([]ListedPetResponse, 0, len(listed))
	for _, l := range listed {
		pets = append(pets, ListedPetResponse{
			ID:           l.Pet.ID,
			Name:         l.Pet.Name,
			Type:         l.Pet.Type,
			Breed:        l.Pet.Breed,
			Age:          l.Pet.Age,
			IsSterilized: l.Pet.IsSterilized,
			Owner:        l.OwnerName,
		})
	}
	return ListPetsResponse{Pets: pets, Total: total}
}
