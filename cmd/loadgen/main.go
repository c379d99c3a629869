// Command loadgen seeds the document store with synthetic orders for load and
// search testing. Generated documents pass domain validation, so everything
// written here is readable back through the API.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/ordex"
	"github.com/kailas-cloud/ordex/internal/config"
	"github.com/kailas-cloud/ordex/internal/domain/order"
	logpkg "github.com/kailas-cloud/ordex/internal/logger"
)

func main() {
	var (
		count   = flag.Int("n", 1000, "number of orders to generate")
		workers = flag.Int("c", 8, "concurrent writers")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
	)
	flag.Parse()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	client, err := ordex.New(
		ordex.WithAddrs(cfg.Database.Addrs...),
		ordex.WithRedisAuth(cfg.Database.Username, cfg.Database.Password),
		ordex.WithAlias(cfg.Search.Alias),
		ordex.WithLogger(logger),
		ordex.WithReadinessTimeout(time.Duration(cfg.Database.ReadinessTimeout)*time.Second),
	)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer client.Close()

	ctx := context.Background()

	logger.Info("Generating orders",
		zap.Int("count", *count),
		zap.Int("workers", *workers),
		zap.Int64("seed", *seed),
	)

	// Generation is sequential for a reproducible seed; only writes fan out.
	docs := make(chan order.Order, *workers)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(docs)
		rng := rand.New(rand.NewSource(*seed))
		for i := 0; i < *count; i++ {
			select {
			case docs <- generateOrder(rng):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < *workers; w++ {
		g.Go(func() error {
			for o := range docs {
				if err := client.PutOrder(ctx, o); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Fatal("Load generation failed", zap.Error(err))
	}

	logger.Info("Done",
		zap.Int("written", *count),
		zap.Duration("elapsed", time.Since(start)),
	)
}

var (
	statuses = []order.Status{
		order.StatusCreated, order.StatusConfirmed, order.StatusPurchased,
		order.StatusProcessing, order.StatusShipped, order.StatusDelivered,
		order.StatusCompleted, order.StatusCancelled, order.StatusReturned,
	}
	channels   = []string{"WEB", "MOBILE", "STORE", "CALL_CENTER"}
	firstNames = []string{"Ava", "Noah", "Mia", "Liam", "Zoe", "Omar", "Lena", "Idris", "Sara", "Kenji"}
	lastNames  = []string{"Haddad", "Okafor", "Silva", "Novak", "Tanaka", "Berg", "Rossi", "Khan", "Moreau", "Papas"}
	brands     = []string{"Acme", "Nimbus", "Vertex", "Orbital"}
	cities     = []string{"Riverton", "Eastfield", "Northgate", "Lakemont"}
	planNames  = []string{"Starter", "Plus", "Unlimited", "Family"}
)

// generateOrder builds one plausible order. Timestamps land in the last 120
// days so monthly index partitions get a realistic spread.
func generateOrder(rng *rand.Rand) order.Order {
	created := time.Now().UTC().
		Add(-time.Duration(rng.Intn(120*24)) * time.Hour).
		Truncate(time.Second)
	updated := created.Add(time.Duration(rng.Intn(72)) * time.Hour)

	name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	mobile := fmt.Sprintf("+1555%07d", rng.Intn(10000000))
	email := fmt.Sprintf("user%d@example.com", rng.Intn(1000000))
	unitPrice := int64(rng.Intn(50000) + 500)
	qty := rng.Intn(3) + 1
	total := unitPrice * int64(qty)

	o := order.Order{
		OrderID:   uuid.NewString(),
		Status:    statuses[rng.Intn(len(statuses))],
		CreatedAt: order.NewMillis(created),
		UpdatedAt: order.NewMillis(updated),
		Channel:   channels[rng.Intn(len(channels))],
		CustomerAccount: order.CustomerAccount{
			AccountID:         uuid.NewString(),
			Type:              order.CustomerIndividual,
			LoyaltyTier:       []string{"", "SILVER", "GOLD"}[rng.Intn(3)],
			VIP:               rng.Intn(10) == 0,
			PreferredLanguage: "en",
		},
		Party: order.Party{
			NationalID: fmt.Sprintf("%010d", rng.Int63n(1e10)),
			FullName:   name,
			ContactPoints: order.ContactPoints{
				Mobile:          mobile,
				Email:           email,
				PreferredMethod: order.ContactSMS,
			},
			BirthDate: fmt.Sprintf("19%02d-%02d-%02d", rng.Intn(50)+40, rng.Intn(12)+1, rng.Intn(28)+1),
			Gender:    []order.Gender{order.GenderMale, order.GenderFemale}[rng.Intn(2)],
		},
		PriceSummary: order.PriceSummary{
			TotalAmount:   total,
			PayableAmount: total,
			Currency:      "USD",
		},
		ProductOrderItems: []order.ProductOrderItem{{
			ItemID:     uuid.NewString(),
			ProductID:  uuid.NewString(),
			SKU:        fmt.Sprintf("SKU-%06d", rng.Intn(1000000)),
			Status:     order.ItemConfirmed,
			Type:       order.ItemPhysical,
			Quantity:   qty,
			UnitPrice:  unitPrice,
			TotalPrice: total,
			Attributes: order.ProductAttributes{
				Brand:    brands[rng.Intn(len(brands))],
				Model:    fmt.Sprintf("X-%d", rng.Intn(900)+100),
				MacID:    randomMAC(rng),
				Category: "DEVICE",
			},
		}},
		Payment: []order.Payment{{
			Method:   order.MethodCard,
			Status:   order.PaymentSuccessful,
			Provider: "gateway",
			Transactions: []order.PaymentTransaction{{
				ID:          uuid.NewString(),
				Type:        "SALE",
				Amount:      total,
				ProcessedAt: order.NewMillis(created.Add(time.Minute)),
			}},
		}},
	}

	// Roughly a third of orders also carry a service line with provisioning.
	if rng.Intn(3) == 0 {
		o.ServiceOrderItems = []order.ServiceOrderItem{{
			ItemID:     uuid.NewString(),
			ProductID:  uuid.NewString(),
			SKU:        fmt.Sprintf("PLAN-%04d", rng.Intn(10000)),
			Status:     order.ItemProcessing,
			Type:       order.ItemDigitalService,
			Quantity:   1,
			UnitPrice:  2999,
			TotalPrice: 2999,
			Attributes: order.ServiceAttributes{
				PlanType: "POSTPAID",
				PlanName: planNames[rng.Intn(len(planNames))],
			},
			Provisioning: order.Provisioning{
				Status:           order.ProvisioningPending,
				ProvisioningType: order.ProvisioningNewActivation,
				TargetIdentifier: mobile,
			},
		}}
	}

	if o.Status == order.StatusShipped || o.Status == order.StatusDelivered {
		o.ShipmentOrders = []order.ShipmentOrder{{
			ShipmentID:     uuid.NewString(),
			Status:         order.ItemShipped,
			TrackingNumber: fmt.Sprintf("TRK%09d", rng.Intn(1e9)),
			Carrier:        "express",
			Items:          []string{o.ProductOrderItems[0].ItemID},
			Address: order.ShipmentAddress{
				FullAddress: fmt.Sprintf("%d Main St", rng.Intn(9000)+1),
				City:        cities[rng.Intn(len(cities))],
				PostalCode:  fmt.Sprintf("%05d", rng.Intn(100000)),
				Country:     "US",
			},
			History: []order.ShipmentHistoryItem{{
				Status:        order.ItemShipped,
				Timestamp:     order.NewMillis(updated),
				RecipientName: name,
			}},
		}}
	}

	return o
}

func randomMAC(rng *rand.Rand) string {
	b := make([]byte, 6)
	rng.Read(b)
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", b[0], b[1], b[2], b[3], b[4], b[5])
}
