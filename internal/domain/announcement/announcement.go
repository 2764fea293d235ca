package announcement

// Record is one subscription announcement as published by the housing data provider.
// Every field is optional; an absent or null value decodes to "".
type Record struct {
	HouseCategoryName string `json:"HOUSE_DTL_SECD_NM"` // e.g. 민영, 국민
	HouseName         string `json:"HOUSE_NM"`
	ReceptionOpen     string `json:"RCEPT_BGNDE"` // YYYY-MM-DD
	ReceptionClose    string `json:"RCEPT_ENDDE"` // YYYY-MM-DD
	RegionName        string `json:"SUBSCRPT_AREA_CODE_NM"`
	DetailURL         string `json:"PBLANC_URL"`
}

// Set is the provider's response envelope for one query.
// Data is nil when the provider omitted the key.
type Set struct {
	Page         int      `json:"page"`
	PerPage      int      `json:"perPage"`
	TotalCount   int      `json:"totalCount"`
	CurrentCount int      `json:"currentCount"`
	MatchCount   int      `json:"matchCount"`
	Data         []Record `json:"data"`
}

// IsEmpty reports whether the envelope carries no records at all.
func (s *Set) IsEmpty() bool {
	return s == nil || len(s.Data) == 0
}
