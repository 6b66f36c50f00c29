package pushplus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://www.pushplus.plus"
	DefaultTitle   = "振幅提醒"

	codeOK = 200
)

var _ notification.Notifier = (*Notifier)(nil)

type Config struct {
	Token   string        `mapstructure:"token"`
	Title   string        `mapstructure:"title"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Notifier 通过 pushplus 推送到微信
type Notifier struct {
	cli   *resty.Client
	token string
	title string
}

type sendResp struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func NewNotifier(cfg Config) (*Notifier, error) {
	if cfg.Token == "" {
		return nil, errors.New("pushplus token is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cli := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	return &Notifier{
		cli:   cli,
		token: cfg.Token,
		title: cfg.Title,
	}, nil
}

func (n *Notifier) Send(ctx context.Context, message string) error {
	var res sendResp
	resp, err := n.cli.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"token":   n.token,
			"title":   n.title,
			"content": message,
		}).
		SetResult(&res).
		Get("/send")
	if err != nil {
		return fmt.Errorf("%w: %w", notification.ErrDelivery, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: http status %d", notification.ErrDelivery, resp.StatusCode())
	}
	if res.Code != codeOK {
		return fmt.Errorf("%w: pushplus code %d: %s", notification.ErrDelivery, res.Code, res.Msg)
	}
	return nil
}
