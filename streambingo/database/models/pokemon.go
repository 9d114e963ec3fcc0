package models

import "github.com/uptrace/bun"

// Pokemon is static reference data imported from the national dex.
type Pokemon struct {
	bun.BaseModel `bun:"table:pokemon,alias:p"`

	ID             int64  `bun:"id,pk,autoincrement" json:"id"`
	NationalDexID  int    `bun:"national_dex_id,notnull" json:"national_dex_id"`
	Name           string `bun:"name,notnull" json:"name"`
	ImgURL         string `bun:"img_url" json:"img_url"`
	ShinyAvailable bool   `bun:"shiny_available,notnull,default:true" json:"shiny_available"`
}
