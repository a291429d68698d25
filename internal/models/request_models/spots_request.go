package request_models

type SpotListQuery struct {
	Query    string `form:"q"`
	Page     string `form:"page"`
	PageSize string `form:"pageSize"`
}

type PageMoveForm struct {
	Direction string `form:"dir"`
}

type SelectSpotForm struct {
	Name string `form:"name"`
}
