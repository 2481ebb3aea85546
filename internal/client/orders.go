package client

import (
	"context"
	"fmt"
	"github.com/imroc/req/v3"
	"net/http"
	"shipdesk/internal/entity"
	"strconv"
	"time"
)

type Orders struct {
	req *req.Client
}

func NewOrders(addr, token string) *Orders {
	c := req.C().
		SetBaseURL(addr).
		SetTimeout(5 * time.Second)
	if token != "" {
		c.SetCommonBearerAuthToken(token)
	}

	return &Orders{req: c}
}

// ListPage requests one page of orders awaiting fulfillment and reports
// whether more pages follow. When the API responds with code 429 the
// request is retried twice with a fixed interval.
func (c *Orders) ListPage(ctx context.Context, page int) ([]entity.RawOrder, bool, error) {
	respBody := struct {
		Orders  []entity.RawOrder `json:"orders"`
		HasMore bool              `json:"has_more"`
	}{}
	resp, err := c.req.R().
		SetContext(ctx).
		SetRetryCount(2).
		SetRetryFixedInterval(30*time.Second).
		SetRetryCondition(func(resp *req.Response, err error) bool {
			return err == nil && resp.StatusCode == http.StatusTooManyRequests
		}).
		SetSuccessResult(&respBody).
		SetQueryParam("page", strconv.Itoa(page)).
		Get("/api/orders")
	if err != nil {
		return nil, false, err
	}

	if resp.IsErrorState() {
		return nil, false, fmt.Errorf("server responded with status code %d", resp.StatusCode)
	}

	return respBody.Orders, respBody.HasMore, nil
}
