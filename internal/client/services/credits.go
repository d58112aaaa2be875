package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/rfidcredits/internal/client/client"
	"github.com/dmitrijs2005/rfidcredits/internal/client/models"
	"github.com/dmitrijs2005/rfidcredits/internal/common"
	"github.com/dmitrijs2005/rfidcredits/internal/logging"
)

// CreditService submits top-ups to the privileged endpoint.
//
// An invalid request (see models.CreditAddRequest.Validate) is rejected
// before any network call. Redirects are followed; 200 and 303 are success,
// anything else is a *client.CreditUpdateError carrying the status. The
// session is whatever the shared jar holds, it is not checked here.
type CreditService interface {
	AddCredits(ctx context.Context, req models.CreditAddRequest) (models.Outcome, error)
}

type creditService struct {
	exec   client.Executor
	logger logging.Logger
}

func NewCreditService(exec client.Executor, logger logging.Logger) CreditService {
	return &creditService{exec: exec, logger: logger}
}

func (c *creditService) AddCredits(ctx context.Context, req models.CreditAddRequest) (models.Outcome, error) {
	if err := req.Validate(); err != nil {
		return models.Outcome{Result: models.Failure}, err
	}

	fields := url.Values{}
	fields.Set(common.FieldRFIDID, req.TagID)
	fields.Set(common.FieldAmount, req.Amount)

	status, err := c.exec.PostForm(ctx, common.AddCreditPath, fields, true)
	if err != nil {
		return models.Outcome{Result: models.Failure}, err
	}

	log := c.logger.With("rfid_id", req.TagID, "amount", req.Amount, "status", status)

	switch status {
	case http.StatusOK, http.StatusSeeOther:
		log.Info(ctx, "credits added")
		return models.Outcome{StatusCode: status, Result: models.Success}, nil
	default:
		log.Warn(ctx, "credit update rejected")
		return models.Outcome{StatusCode: status, Result: models.Failure}, &client.CreditUpdateError{StatusCode: status}
	}
}
