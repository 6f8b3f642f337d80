package search_list

import (
	"net/http"
	"strings"

	"litten/api"
	"litten/db"
	"litten/docs"
	"litten/state"
	"litten/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/go-playground/validator/v10"
)

var (
	indexBotColsArr = db.GetCols(types.IndexBot{})
	indexBotCols    = strings.Join(indexBotColsArr, ",")

	compiledMessages map[string]string
)

func Setup() {
	compiledMessages = api.CompileValidationErrors(types.SearchQuery{})
}

func Docs() *docs.Doc {
	return docs.Route(&docs.Doc{
		Method:      "POST",
		Path:        "/list/search",
		OpId:        "search_list",
		Summary:     "Search List",
		Description: "Searches the list for approved bots based on a query, tag filters and numeric range filters.",
		Req:         types.SearchQuery{},
		Resp:        types.SearchResponse{},
		Tags:        []string{api.CurrentTag},
	})
}

func Route(d api.RouteData, r *http.Request) api.HttpResponse {
	var payload types.SearchQuery

	hresp, ok := api.MarshalReq(r, &payload)

	if !ok {
		return hresp
	}

	err := state.Validator.Struct(payload)

	if err != nil {
		errs := err.(validator.ValidationErrors)
		return api.ValidatorErrorResponse(compiledMessages, errs)
	}

	if payload.TagFilter.TagMode != types.TagModeAll && payload.TagFilter.TagMode != types.TagModeAny {
		payload.TagFilter.TagMode = types.TagModeAny
	}

	sql := "SELECT " + indexBotCols + " FROM bots WHERE type = $1"
	args := []any{types.BotTypeApproved}

	if payload.Query != "" {
		args = append(args, "%"+payload.Query+"%")
		sql += " AND (name ILIKE $2 OR short ILIKE $2)"
	} else {
		args = append(args, "")
		sql += " AND $2 = ''"
	}

	args = append(args, payload.Votes.From, payload.Votes.To)
	sql += " AND ($3 = 0 OR votes >= $3) AND ($4 = 0 OR votes <= $4)"

	args = append(args, payload.Servers.From, payload.Servers.To)
	sql += " AND ($5 = 0 OR servers >= $5) AND ($6 = 0 OR servers <= $6)"

	if len(payload.TagFilter.Tags) > 0 {
		args = append(args, payload.TagFilter.Tags)
		sql += " AND tags " + string(payload.TagFilter.TagMode) + " $7"
	}

	sql += " ORDER BY votes DESC LIMIT 50"

	rows, err := state.Pool.Query(d.Context, sql, args...)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	var bots []types.IndexBot

	err = pgxscan.ScanAll(&bots, rows)

	if err != nil {
		state.Logger.Error(err)
		return api.DefaultResponse(http.StatusInternalServerError)
	}

	return api.HttpResponse{
		Json: types.SearchResponse{
			Bots: bots,
		},
	}
}
