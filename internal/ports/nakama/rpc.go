package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"railfounding/internal/app/buytrain"
	"railfounding/internal/app/session"
	"railfounding/internal/app/usa"
	"railfounding/internal/config"
	"railfounding/internal/domain"
	"railfounding/internal/gamedata"

	"github.com/heroiclabs/nakama-common/runtime"
)

// Nakama runtime error codes.
const (
	codeInvalidArgument = 3
	codeNotFound        = 5
	codeInternal        = 13
)

// FoundingPreviewResponse is returned by the founding_preview RPC.
type FoundingPreviewResponse struct {
	MaxBid         int `json:"max_bid"`
	MaxCitySubsidy int `json:"max_city_subsidy"`
	ParPriceCap    int `json:"par_price_cap"`
	MinBid         int `json:"min_bid"`
}

// TrainView describes a purchasable train.
type TrainView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Variants []string `json:"variants,omitempty"`
}

// PurchasableTrainsResponse is returned by the purchasable_trains RPC.
type PurchasableTrainsResponse struct {
	Skipped bool        `json:"skipped"`
	Trains  []TrainView `json:"trains"`
}

type foundingPreviewRequest struct {
	Corporation string   `json:"corporation"`
	PlayerCash  int      `json:"player_cash"`
	Companies   []string `json:"companies"`
	HomeHex     string   `json:"home_hex"`
}

type purchasableTrainsRequest struct {
	Corporation  string `json:"corporation"`
	FuelSupplied bool   `json:"fuel_supplied"`
}

// foundingService answers read-only queries against a fresh world built from the catalog.
type foundingService struct {
	cfg     config.VariantConfig
	catalog *gamedata.Catalog
}

func newFoundingService(cfg config.VariantConfig, catalog *gamedata.Catalog) *foundingService {
	return &foundingService{cfg: cfg, catalog: catalog}
}

// registerRPCs registers Nakama RPC endpoints.
func registerRPCs(initializer runtime.Initializer, svc *foundingService) error {
	if err := initializer.RegisterRpc(RpcFoundingPreview, svc.rpcFoundingPreview); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcPurchasableTrains, svc.rpcPurchasableTrains)
}

// rpcFoundingPreview reports a player's bidding limits for a corporation.
//
// Payload: {"corporation": "UP", "player_cash": 600, "companies": ["P7"], "home_hex": "E11"}
func (s *foundingService) rpcFoundingPreview(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req foundingPreviewRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil || req.PlayerCash < 0 {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	resp, err := s.preview(req, logger)
	if err != nil {
		return "", err
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func (s *foundingService) preview(req foundingPreviewRequest, logger runtime.Logger) (FoundingPreviewResponse, error) {
	world := s.catalog.Build()
	corp, ok := world.Corporations[req.Corporation]
	if !ok {
		return FoundingPreviewResponse{}, runtime.NewError("Unknown corporation", codeNotFound)
	}

	player := domain.NewPlayer("preview", "Preview", req.PlayerCash)
	for _, id := range req.Companies {
		company, ok := world.Companies[id]
		if !ok {
			return FoundingPreviewResponse{}, runtime.NewError("Unknown company "+id, codeNotFound)
		}
		domain.TransferCompany(player, company)
	}

	game := session.New(world, s.cfg, player)
	game.SetLogSink(logSink(logger))
	step, err := usa.New(game, &domain.Round{}, s.cfg, []*domain.Player{player})
	if err != nil {
		logger.Error("Failed to create founding step: %v", err)
		return FoundingPreviewResponse{}, runtime.NewError("Internal error", codeInternal)
	}

	if req.HomeHex != "" {
		hex, ok := world.Hexes[req.HomeHex]
		if !ok {
			return FoundingPreviewResponse{}, runtime.NewError("Unknown hex", codeNotFound)
		}
		corp.PlaceHomeToken(hex)
		step.ClaimHomeSubsidies(corp)
	}

	maxBid := step.MaxBid(player, corp)
	return FoundingPreviewResponse{
		MaxBid:         maxBid,
		MaxCitySubsidy: step.MaxCitySubsidy(),
		ParPriceCap:    step.ParPrice(maxBid),
		MinBid:         step.MinBid(corp),
	}, nil
}

// rpcPurchasableTrains lists the depot trains offered to a corporation.
//
// Payload: {"corporation": "UP", "fuel_supplied": true}
func (s *foundingService) rpcPurchasableTrains(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req purchasableTrainsRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}

	resp, err := s.purchasable(req)
	if err != nil {
		return "", err
	}
	b, _ := json.Marshal(resp)
	return string(b), nil
}

func (s *foundingService) purchasable(req purchasableTrainsRequest) (PurchasableTrainsResponse, error) {
	world := s.catalog.Build()
	corp, ok := world.Corporations[req.Corporation]
	if !ok {
		return PurchasableTrainsResponse{}, runtime.NewError("Unknown corporation", codeNotFound)
	}

	game := session.New(world, s.cfg)
	fuel := buytrain.SkipCoalAndOil{Supplied: func(*domain.Corporation) bool { return req.FuelSupplied }}
	step := buytrain.New(game, nil, fuel)

	resp := PurchasableTrainsResponse{Trains: []TrainView{}}
	if len(step.Actions(corp)) == 0 {
		resp.Skipped = true
		return resp, nil
	}
	for _, t := range step.Purchasable(corp) {
		view := TrainView{ID: t.ID, Name: t.Name, Price: t.Price}
		for _, v := range t.Variants {
			view.Variants = append(view.Variants, v.Name)
		}
		resp.Trains = append(resp.Trains, view)
	}
	return resp, nil
}

// logSink mirrors game log lines to the runtime logger.
func logSink(logger runtime.Logger) func(string) {
	l := logger.WithField("game", "railfounding")
	return func(line string) {
		l.Info("%s", line)
	}
}
