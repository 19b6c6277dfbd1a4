package main

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tdewolff/argp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fortune-dcel/pkg/clip"
	"github.com/0x0FACED/go-fortune-dcel/pkg/logger"
	"github.com/0x0FACED/go-fortune-dcel/pkg/render"
	"github.com/0x0FACED/go-fortune-dcel/pkg/sites"
	"github.com/0x0FACED/go-fortune-dcel/pkg/voronoi"
	"github.com/0x0FACED/go-fortune-dcel/static"
)

type Serve struct {
	Addr  string `default:":8080" desc:"Listen address"`
	Level string `default:"debug" desc:"Log level of the sweep trace shown on the page"`
}

type Render struct {
	Input    string `short:"i" desc:"File with one 'x y' site per line, '-' for stdin; sites are generated when empty"`
	Output   string `short:"o" default:"voronoi.png" desc:"Output PNG file"`
	Width    int    `default:"1000" desc:"Bounding box and image width"`
	Height   int    `default:"1000" desc:"Bounding box and image height"`
	Stations int    `short:"n" default:"12" desc:"Number of generated sites"`
	Random   bool   `desc:"Generate random sites instead of a grid"`
	Seed     int64  `default:"1" desc:"Random generator seed"`
	Close    bool   `default:"true" desc:"Close cells along the bounding box"`
	Level    string `default:"info" desc:"Log level"`
}

func main() {
	root := argp.NewCmd(&Serve{}, "Voronoi diagrams with Fortune's sweep")
	root.AddCmd(&Render{}, "render", "Render a diagram to PNG")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Serve) Run() error {
	level, err := zapcore.ParseLevel(cmd.Level)
	if err != nil {
		return err
	}
	log := logger.NewConsole(os.Stderr, zapcore.InfoLevel)

	http.HandleFunc("/", diagramHandler(level))
	log.Info("[app] Сервер запущен", zap.String("addr", cmd.Addr))
	err = http.ListenAndServe(cmd.Addr, nil)
	log.Error("[app] Сервер остановлен", zap.Error(err))
	return err
}

// formInt reads a positive integer form value, falling back to def.
func formInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.FormValue(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// http обработчик страницы с диаграммой и формой для ввода данных
func diagramHandler(level zapcore.Level) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width, height, numStations := 1000, 1000, 12
		isRandom := true
		var seed int64 = 1

		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			width = formInt(r, "width", width)
			height = formInt(r, "height", height)
			numStations = formInt(r, "stations", numStations)
			isRandom = r.FormValue("random") == "true"
			if s, err := strconv.ParseInt(r.FormValue("seed"), 10, 64); err == nil {
				seed = s
			}
		}

		var points []voronoi.Point
		if isRandom {
			points = sites.Random(numStations, width, height, seed)
		} else {
			points = sites.Grid(numStations, width, height)
		}

		log := logger.New(level)
		defer log.ClearLogs()

		d, err := voronoi.Compute(points, voronoi.WithLogger(log.Zap()))
		if err != nil {
			log.Error("[app] Ошибка построения", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		bbox := clip.NewBoundingBox(0, float64(width), 0, float64(height))
		clipped := clip.Build(d.Mesh, bbox, false)
		scatter := render.Chart(points, d.Mesh, clipped, "Диаграмма Вороного (Форчун)")

		fmt.Fprintln(w, static.Part1)
		if err := scatter.Render(w); err != nil {
			log.Error("[app] Ошибка рендеринга диаграммы", zap.Error(err))
		}
		fmt.Fprintf(w, static.Part2, html.EscapeString(statsLine(d)))
		// вставляем логи в HTML
		fmt.Fprintln(w, log.HTML())
		fmt.Fprintln(w, static.Part3)
	}
}

func statsLine(d *voronoi.Diagram) string {
	return fmt.Sprintf("сайтов: %d, дубликатов: %d, вершин: %d, ребер: %d, событий круга: %d (отброшено %d)",
		d.Stats.Sites, d.Stats.Duplicates, len(d.Mesh.Vertices), d.Mesh.Pairs(),
		d.Stats.CircleEvents, d.Stats.CirclesPurged)
}

func (cmd *Render) Run() error {
	level, err := zapcore.ParseLevel(cmd.Level)
	if err != nil {
		return err
	}
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return errors.New("width and height must be positive")
	}
	log := logger.NewConsole(os.Stderr, level)

	points, err := cmd.sites()
	if err != nil {
		return err
	}

	d, err := voronoi.Compute(points, voronoi.WithLogger(log.Zap()))
	if err != nil {
		return err
	}
	log.Info("[app] Диаграмма построена", zap.String("stats", statsLine(d)))

	bbox := clip.NewBoundingBox(0, float64(cmd.Width), 0, float64(cmd.Height))
	clipped := clip.Build(d.Mesh, bbox, cmd.Close)

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	if err := render.PNG(f, points, clipped, bbox, cmd.Width, cmd.Height); err != nil {
		f.Close()
		return errors.Wrap(err, "write png")
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close png")
	}
	log.Info("[app] PNG сохранен", zap.String("file", cmd.Output))
	return nil
}

func (cmd *Render) sites() ([]voronoi.Point, error) {
	switch cmd.Input {
	case "":
		if cmd.Random {
			return sites.Random(cmd.Stations, cmd.Width, cmd.Height, cmd.Seed), nil
		}
		return sites.Grid(cmd.Stations, cmd.Width, cmd.Height), nil
	case "-":
		return sites.Read(os.Stdin)
	}
	f, err := os.Open(cmd.Input)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sites.Read(f)
}
