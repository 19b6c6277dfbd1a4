package static

// Page fragments around the chart. Part2 takes the run statistics as its
// only format argument; the buffered sweep log goes between Part2 and Part3.
var (
	Part1 = `
    <!DOCTYPE html>
    <html>
    <head>
        <meta charset="utf-8">
        <title>Диаграмма Вороного (DCEL)</title>
		<style>
			body {
				margin: 0;
				background-color: #1F1F1F;
				color: #d3d3d3;
				font-family: Consolas, monospace;
				overflow: hidden;
			}

			#container {
				display: flex;
				height: 100vh;
			}

			#left-container, #right-container {
				width: 50%;
				padding: 10px;
				box-sizing: border-box;
			}

			/* правая колонка: статистика и лог прохода */
			#right-container {
				border-left: 5px solid #757575;
				overflow: auto;
				background-color: #1e1e1e;
			}

			#stats {
				padding: 6px 8px;
				margin-bottom: 10px;
				border: 1px solid #444;
				border-radius: 4px;
				color: #90ee90;
			}

			#logs {
				white-space: pre-wrap;
				word-wrap: break-word;
			}

			form {
				display: grid;
				grid-template-columns: max-content 160px;
				gap: 8px 12px;
				align-items: center;
			}

			input {
				background-color: #2b2b2b;
				color: #d3d3d3;
				border: 1px solid #444;
				padding: 5px;
				border-radius: 4px;
			}

			input[type="submit"] {
				grid-column: 2;
				cursor: pointer;
			}

			input[type="submit"]:hover {
				background-color: #444;
			}

			h1 {
				font-size: 1.4em;
			}

			::-webkit-scrollbar {
				width: 8px;
			}

			::-webkit-scrollbar-thumb {
				background-color: #444;
				border-radius: 10px;
			}
        </style>
    </head>
    <body>
        <div id="container">
            <div id="left-container">
                <h1>Диаграмма Вороного: заметающая прямая Форчуна</h1>
                <form id="diagram-form" method="POST">
                    <label for="width">Ширина (W)</label>
                    <input type="number" id="width" name="width" value="1000" min="100" max="5000">
                    <label for="height">Высота (H)</label>
                    <input type="number" id="height" name="height" value="1000" min="100" max="5000">
                    <label for="stations">Станций (n)</label>
                    <input type="number" id="stations" name="stations" value="12" min="1" max="2000">
                    <label for="random">Случайные станции</label>
                    <input type="checkbox" id="random" name="random" value="true" checked>
                    <label for="seed">Зерно генератора</label>
                    <input type="number" id="seed" name="seed" value="1">
                    <input type="submit" value="Построить">
                </form>
    `

	Part2 = `
            </div>
            <div id="right-container">
                <h1>Статистика</h1>
                <div id="stats">%s</div>
                <h1>Лог прохода</h1>
                <div id="logs">`

	Part3 = `
                </div>
            </div>
        </div>

        <script>
            // форма перестраивает страницу целиком, без перезагрузки
            document.getElementById('diagram-form').addEventListener('submit', async function (e) {
                e.preventDefault();
                const params = new URLSearchParams(new FormData(this)).toString();
                try {
                    const response = await fetch('/', {
                        method: 'POST',
                        body: params,
                        headers: {'Content-Type': 'application/x-www-form-urlencoded'},
                    });
                    const html = await response.text();
                    if (!response.ok) {
                        throw new Error(html);
                    }
                    document.open();
                    document.write(html);
                    document.close();
                } catch (error) {
                    document.getElementById('stats').textContent = 'Ошибка: ' + error.message;
                }
            });
        </script>
    </body>
    </html>
    `
)
