package http

import (
	"healthsmart-chatbot/internal/prediction"
	"healthsmart-chatbot/pkg/response"
)

// --- Request DTOs ---

// predictReq takes every feature as a pointer so a missing field is
// distinguishable from a zero value.
type predictReq struct {
	Age      *float64 `json:"age" binding:"required"`
	Sex      *float64 `json:"sex" binding:"required"`
	CP       *float64 `json:"cp" binding:"required"`
	TrestBPS *float64 `json:"trestbps" binding:"required"`
	Chol     *float64 `json:"chol" binding:"required"`
	FBS      *float64 `json:"fbs" binding:"required"`
	RestECG  *float64 `json:"restecg" binding:"required"`
	Thalach  *float64 `json:"thalach" binding:"required"`
	Exang    *float64 `json:"exang" binding:"required"`
	Oldpeak  *float64 `json:"oldpeak" binding:"required"`
	Slope    *float64 `json:"slope" binding:"required"`
	CA       *float64 `json:"ca" binding:"required"`
	Thal     *float64 `json:"thal" binding:"required"`
}

func (r predictReq) toInput() prediction.PredictInput {
	return prediction.PredictInput{Features: prediction.Features{
		Age:      *r.Age,
		Sex:      *r.Sex,
		CP:       *r.CP,
		TrestBPS: *r.TrestBPS,
		Chol:     *r.Chol,
		FBS:      *r.FBS,
		RestECG:  *r.RestECG,
		Thalach:  *r.Thalach,
		Exang:    *r.Exang,
		Oldpeak:  *r.Oldpeak,
		Slope:    *r.Slope,
		CA:       *r.CA,
		Thal:     *r.Thal,
	}}
}

type listLogsReq struct {
	Limit int `form:"limit"`
}

func (r listLogsReq) toInput() prediction.ListLogsInput {
	return prediction.ListLogsInput{Limit: r.Limit}
}

// --- Response DTOs ---

type predictResp struct {
	Prediction   []float64 `json:"prediction"`
	Risk         float64   `json:"risk"`
	ModelVersion string    `json:"model_version"`
}

func (h *handler) newPredictResp(out prediction.PredictOutput) predictResp {
	return predictResp{
		Prediction:   out.Prediction,
		Risk:         out.Risk,
		ModelVersion: out.ModelVersion,
	}
}

type logResp struct {
	ID           string              `json:"id"`
	Features     prediction.Features `json:"features"`
	Result       []float64           `json:"result"`
	ModelVersion string              `json:"model_version"`
	CreatedAt    response.DateTime   `json:"created_at"`
}

type listLogsResp struct {
	Logs  []logResp `json:"logs"`
	Count int       `json:"count"`
}

func (h *handler) newListLogsResp(out prediction.ListLogsOutput) listLogsResp {
	logs := make([]logResp, len(out.Logs))
	for i, l := range out.Logs {
		logs[i] = logResp{
			ID:           l.ID,
			Features:     l.Features,
			Result:       l.Result,
			ModelVersion: l.ModelVersion,
			CreatedAt:    response.DateTime(l.CreatedAt),
		}
	}
	return listLogsResp{Logs: logs, Count: len(logs)}
}
