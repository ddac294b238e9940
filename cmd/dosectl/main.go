package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/api"
	"github.com/quentinrf/plant-monitor/services/dosing-service/pkg/tlsconfig"
)

const usage = `usage: dosectl [-addr host:port] <command> [flags]

commands:
  tank     -name NAME -volume LITERS
  fert     -name NAME -unit ml|g [-id ID] [-n PPM] [-p PPM] [-k PPM] [-fe PPM] [-mg PPM]
  dose     -tank ID -fert ID -amount AMOUNT
  history  -tank ID [-days N]
  analyze  -tank ID
  project  -tank ID [-day N] [-pct PERCENT]
  levels   [-n PPM] [-p PPM] [-k PPM] [-fe PPM] [-dn PPM] [-dp PPM] [-dk PPM] [-dfe PPM] [-day N -pct PERCENT]

project and levels use the default water change (day 7, 50%) when -day and -pct are both 0
`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	addr := flag.String("addr", "localhost:50053", "dosing service address")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	creds := insecure.NewCredentials()
	if files := tlsconfig.FromEnv(); files.Enabled() {
		tlsCfg, err := files.Client()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatal().Err(err).Str("addr", *addr).Msg("failed to connect")
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	out, err := run(ctx, api.NewDosingServiceClient(conn), flag.Arg(0), flag.Args()[1:])
	if err != nil {
		log.Fatal().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
	}

	enc, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode response")
	}
	fmt.Println(string(enc))
}

func run(ctx context.Context, client *api.DosingServiceClient, cmd string, args []string) (any, error) {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)

	switch cmd {
	case "tank":
		name := fs.String("name", "", "tank name")
		volume := fs.Float64("volume", 0, "volume in liters")
		fs.Parse(args)
		return client.RegisterTank(ctx, &api.RegisterTankRequest{Name: *name, VolumeLiters: *volume})

	case "fert":
		f := &api.Fertilizer{}
		fs.StringVar(&f.Id, "id", "", "fertilizer id (generated when empty)")
		fs.StringVar(&f.Name, "name", "", "product name")
		fs.StringVar(&f.Unit, "unit", "ml", "dosing unit: ml or g")
		fs.Float64Var(&f.NitrogenPpm, "n", 0, "nitrate ppm per unit per liter")
		fs.Float64Var(&f.PhosphorusPpm, "p", 0, "phosphate ppm per unit per liter")
		fs.Float64Var(&f.PotassiumPpm, "k", 0, "potassium ppm per unit per liter")
		fs.Float64Var(&f.IronPpm, "fe", 0, "iron ppm per unit per liter")
		fs.Float64Var(&f.MagnesiumPpm, "mg", 0, "magnesium ppm per unit per liter")
		fs.Parse(args)
		return client.RegisterFertilizer(ctx, &api.RegisterFertilizerRequest{Fertilizer: f})

	case "dose":
		tank := fs.String("tank", "", "tank id")
		fert := fs.String("fert", "", "fertilizer id")
		amount := fs.Float64("amount", 0, "amount in the fertilizer's unit")
		fs.Parse(args)
		return client.RecordDose(ctx, &api.RecordDoseRequest{TankId: *tank, FertilizerId: *fert, Amount: *amount})

	case "history":
		tank := fs.String("tank", "", "tank id")
		days := fs.Int("days", 7, "days of history")
		fs.Parse(args)
		now := time.Now()
		return client.GetDoseHistory(ctx, &api.GetDoseHistoryRequest{
			TankId:    *tank,
			StartTime: now.AddDate(0, 0, -*days).Unix(),
			EndTime:   now.Unix() + 1,
		})

	case "analyze":
		tank := fs.String("tank", "", "tank id")
		fs.Parse(args)
		return client.AnalyzeTank(ctx, &api.AnalyzeTankRequest{TankId: *tank})

	case "project":
		tank := fs.String("tank", "", "tank id")
		day := fs.Int("day", 7, "water change day (1-7, anything else for none)")
		pct := fs.Float64("pct", 50, "water change percent")
		fs.Parse(args)
		return client.ProjectTank(ctx, &api.ProjectTankRequest{
			TankId:             *tank,
			WaterChangeDay:     int32(*day),
			WaterChangePercent: *pct,
		})

	case "levels":
		start, daily := &api.NutrientLevels{}, &api.NutrientLevels{}
		fs.Float64Var(&start.Nitrogen, "n", 0, "starting nitrate ppm")
		fs.Float64Var(&start.Phosphorus, "p", 0, "starting phosphate ppm")
		fs.Float64Var(&start.Potassium, "k", 0, "starting potassium ppm")
		fs.Float64Var(&start.Iron, "fe", 0, "starting iron ppm")
		fs.Float64Var(&daily.Nitrogen, "dn", 0, "daily nitrate ppm")
		fs.Float64Var(&daily.Phosphorus, "dp", 0, "daily phosphate ppm")
		fs.Float64Var(&daily.Potassium, "dk", 0, "daily potassium ppm")
		fs.Float64Var(&daily.Iron, "dfe", 0, "daily iron ppm")
		day := fs.Int("day", 0, "water change day (1-7)")
		pct := fs.Float64("pct", 0, "water change percent")
		fs.Parse(args)
		return client.ProjectNutrients(ctx, &api.ProjectNutrientsRequest{
			Start:              start,
			Daily:              daily,
			WaterChangeDay:     int32(*day),
			WaterChangePercent: *pct,
		})
	}

	return nil, fmt.Errorf("unknown command %q", cmd)
}
