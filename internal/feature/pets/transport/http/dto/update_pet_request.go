package dto

// UpdatePetReq はPATCH /pets/:idのリクエストボディを表します。
// すべてのフィールドは任意で、nilのフィールドは既存値を保持します。
type UpdatePetReq struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=300"`
	Type         *string `json:"type" binding:"omitempty,min=1,max=100"`
	Breed        *string `json:"breed" binding:"omitempty,min=1,max=300"`
	Age          *int    `json:"age" binding:"omitempty,min=0,max=100"`
	IsSterilized *bool   `json:"isSterilized"`
}
