package dto

// ListPetsQuery はGET /petsのクエリパラメータを表します。
// nameは部分一致（大文字小文字を区別しない）、typeは完全一致のフィルタです。
type ListPetsQuery struct {
	Page     int    `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize,default=10" binding:"omitempty,min=1"`
	Name     string `form:"name"`
	Type     string `form:"type"`
}
