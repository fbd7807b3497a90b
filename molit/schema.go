// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package molit

// FieldKind selects the coercion applied to a field's text.
type FieldKind int

const (
	// Text keeps the whitespace-stripped string as-is.
	Text FieldKind = iota
	// Int coerces to int, defaulting to 0 on parse failure.
	Int
	// Float coerces to float64, defaulting to 0.0 on parse failure.
	Float
)

// Field maps one XML tag to an output record key.
type Field struct {
	Tag  string
	Name string
	Kind FieldKind
}

// Schema describes how to extract records from one MOLIT endpoint family.
// SuccessCode is explicit per schema rather than a shared constant: endpoint
// families disagree on the sentinel and a hidden default would silently
// misclassify responses.
type Schema struct {
	// SuccessCode is the resultCode value meaning success.
	SuccessCode string

	// CancelTag names the cancellation-type element; records whose value
	// equals "O" are dropped. Empty disables the filter.
	CancelTag string

	// AmountTag is the required amount element (comma-formatted). A record
	// whose amount fails to parse is dropped, not defaulted.
	AmountTag string

	// AmountName is the output key for the parsed amount.
	AmountName string

	// MonthlyRent emits monthly_rent_10k (empty or invalid parses to 0).
	MonthlyRent bool

	// Fields are the remaining per-item mappings.
	Fields []Field

	// Constants are fixed output values for fields the endpoint omits.
	Constants map[string]any
}

// Sale (trade) schemas. resultCode "000" is the MOLIT success sentinel.
var (
	AptTrade = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealType",
		AmountTag:   "dealAmount",
		AmountName:  "price_10k",
		Fields: []Field{
			{Tag: "aptNm", Name: "apt_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
			{Tag: "dealingGbn", Name: "deal_type", Kind: Text},
		},
	}

	OfficetelTrade = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealType",
		AmountTag:   "dealAmount",
		AmountName:  "price_10k",
		Fields: []Field{
			{Tag: "offiNm", Name: "unit_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
			{Tag: "dealingGbn", Name: "deal_type", Kind: Text},
		},
	}

	VillaTrade = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealType",
		AmountTag:   "dealAmount",
		AmountName:  "price_10k",
		Fields: []Field{
			{Tag: "mhouseNm", Name: "unit_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "houseType", Name: "house_type", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
			{Tag: "dealingGbn", Name: "deal_type", Kind: Text},
		},
	}

	// SingleHouseTrade: the endpoint provides no unit name and no floor;
	// area is gross floor area.
	SingleHouseTrade = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealType",
		AmountTag:   "dealAmount",
		AmountName:  "price_10k",
		Fields: []Field{
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "houseType", Name: "house_type", Kind: Text},
			{Tag: "totalFloorAr", Name: "area_sqm", Kind: Float},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
			{Tag: "dealingGbn", Name: "deal_type", Kind: Text},
		},
		Constants: map[string]any{"unit_name": "", "floor": 0},
	}

	// CommercialTrade uses a lowercase cancellation tag upstream.
	CommercialTrade = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealtype",
		AmountTag:   "dealAmount",
		AmountName:  "price_10k",
		Fields: []Field{
			{Tag: "buildingType", Name: "building_type", Kind: Text},
			{Tag: "buildingUse", Name: "building_use", Kind: Text},
			{Tag: "landUse", Name: "land_use", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "buildingAr", Name: "building_ar", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
			{Tag: "dealingGbn", Name: "deal_type", Kind: Text},
			{Tag: "shareDealingType", Name: "share_dealing", Kind: Text},
		},
	}
)

// Lease/rent schemas. Only the apartment endpoint reports cancelled deals.
var (
	AptRent = Schema{
		SuccessCode: "000",
		CancelTag:   "cdealType",
		AmountTag:   "deposit",
		AmountName:  "deposit_10k",
		MonthlyRent: true,
		Fields: []Field{
			{Tag: "aptNm", Name: "unit_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "contractType", Name: "contract_type", Kind: Text},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
		},
	}

	OfficetelRent = Schema{
		SuccessCode: "000",
		AmountTag:   "deposit",
		AmountName:  "deposit_10k",
		MonthlyRent: true,
		Fields: []Field{
			{Tag: "offiNm", Name: "unit_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "contractType", Name: "contract_type", Kind: Text},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
		},
	}

	VillaRent = Schema{
		SuccessCode: "000",
		AmountTag:   "deposit",
		AmountName:  "deposit_10k",
		MonthlyRent: true,
		Fields: []Field{
			{Tag: "mhouseNm", Name: "unit_name", Kind: Text},
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "houseType", Name: "house_type", Kind: Text},
			{Tag: "excluUseAr", Name: "area_sqm", Kind: Float},
			{Tag: "floor", Name: "floor", Kind: Int},
			{Tag: "contractType", Name: "contract_type", Kind: Text},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
		},
	}

	SingleHouseRent = Schema{
		SuccessCode: "000",
		AmountTag:   "deposit",
		AmountName:  "deposit_10k",
		MonthlyRent: true,
		Fields: []Field{
			{Tag: "umdNm", Name: "dong", Kind: Text},
			{Tag: "houseType", Name: "house_type", Kind: Text},
			{Tag: "totalFloorAr", Name: "area_sqm", Kind: Float},
			{Tag: "contractType", Name: "contract_type", Kind: Text},
			{Tag: "buildYear", Name: "build_year", Kind: Int},
		},
		Constants: map[string]any{"unit_name": ""},
	}
)
