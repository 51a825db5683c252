package domain

import "testing"

func TestSpendConservesCash(t *testing.T) {
	bank := NewBank(1000)
	player := NewPlayer("p1", "Alice", 300)
	corp := NewCorporation("PRR", "Pennsylvania", CorporationRailroad)

	Spend(player, corp, 250)
	Spend(corp, bank, 50)

	if player.Cash() != 50 {
		t.Fatalf("player cash = %d, want 50", player.Cash())
	}
	if corp.Cash() != 200 {
		t.Fatalf("corp cash = %d, want 200", corp.Cash())
	}
	if total := bank.Cash() + player.Cash() + corp.Cash(); total != 1300 {
		t.Fatalf("total cash = %d, want 1300", total)
	}
}

func TestSpendRejectsNegativeAmount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on negative spend")
		}
	}()
	Spend(NewBank(10), NewBank(10), -1)
}

func TestTransferCompanyMovesBetweenPortfolios(t *testing.T) {
	hex := NewHex("E11", "Denver")
	corp := NewCorporation("UP", "Union Pacific", CorporationRailroad)
	subsidy := &Company{ID: "S1", Name: "$30 Subsidy", Value: 30}

	TransferCompany(hex, subsidy)
	if !subsidy.OwnedBy(hex) || len(hex.Companies()) != 1 {
		t.Fatalf("subsidy should start on the hex")
	}

	TransferCompany(corp, subsidy)
	if len(hex.Companies()) != 0 {
		t.Fatalf("hex companies = %d, want 0", len(hex.Companies()))
	}
	if got := corp.Companies(); len(got) != 1 || got[0] != subsidy {
		t.Fatalf("corp companies = %v, want [subsidy]", got)
	}
	if subsidy.Owner() != CompanyOwner(corp) {
		t.Fatalf("owner not updated")
	}
}

func TestCompanyClose(t *testing.T) {
	corp := NewCorporation("UP", "Union Pacific", CorporationRailroad)
	marker := &Company{ID: "S2", Name: "No Subsidy", Effect: EffectNoSubsidy}
	TransferCompany(corp, marker)

	marker.Close()

	if !marker.Closed() || marker.Owner() != nil {
		t.Fatalf("closed company should have no owner")
	}
	if len(corp.Companies()) != 0 {
		t.Fatalf("closed company still owned by corporation")
	}
}

func TestBiddingPowerCountsCompanies(t *testing.T) {
	player := NewPlayer("p1", "Alice", 400)
	TransferCompany(player, &Company{ID: "P1", Value: 40})
	TransferCompany(player, &Company{ID: "P2", Value: 60})

	if got := BiddingPower(player); got != 500 {
		t.Fatalf("BiddingPower() = %d, want 500", got)
	}
}

func TestParseCompanyEffect(t *testing.T) {
	tests := []struct {
		name    string
		want    CompanyEffect
		wantErr bool
	}{
		{name: "", want: EffectPlain},
		{name: "plain", want: EffectPlain},
		{name: "no_subsidy", want: EffectNoSubsidy},
		{name: "flat_bonus", want: EffectFlatBonus},
		{name: "tiered_bonus", want: EffectTieredBonus},
		{name: "free_train_grant", want: EffectFreeTrainGrant},
		{name: "metro_upgrade_grant", want: EffectMetroUpgradeGrant},
		{name: "mystery", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCompanyEffect(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCompanyEffect(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ParseCompanyEffect(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestHomeHexRequiresPlacedToken(t *testing.T) {
	corp := NewCorporation("UP", "Union Pacific", "")
	if corp.Type != CorporationRailroad {
		t.Fatalf("type = %s, want railroad", corp.Type)
	}
	if corp.HomeHex() != nil {
		t.Fatalf("home hex should be nil before placement")
	}
	hex := NewHex("E11", "Denver")
	corp.PlaceHomeToken(hex)
	if corp.HomeHex() != hex {
		t.Fatalf("home hex = %v, want E11", corp.HomeHex())
	}
}

func TestPendingTrackAndRoundReset(t *testing.T) {
	corp := NewCorporation("UP", "Union Pacific", "")
	denver := NewHex("E11", "Denver")
	a := NewPendingTrack(corp, denver)
	b := NewPendingTrack(corp, denver)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("ids %q and %q should be unique", a.ID, b.ID)
	}

	r := &Round{NeededCitySubsidy: 40, PendingTracks: []PendingTrack{a, b}}
	r.Reset()
	if r.NeededCitySubsidy != 0 || len(r.PendingTracks) != 0 {
		t.Fatalf("round not reset: %+v", r)
	}
}
