package report

import "html/template"

// HTML templates for the dashboard document. Compiled once at startup;
// contextual auto-escaping covers all snapshot-supplied strings.
var templates = template.Must(template.New("").Parse(`
{{define "page"}}<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    {{template "styles" .}}
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>📊 {{.Title}}</h1>
            <p>System Metrics Overview</p>
        </div>

        <div class="info-bar">
            <div class="info-item">
                <label>Hostname</label>
                <value>{{.Hostname}}</value>
            </div>
            <div class="info-item">
                <label>Last Update</label>
                <value>{{.Timestamp}}</value>
            </div>
            <div class="info-item">
                <label>Uptime</label>
                <value>{{.Uptime}}</value>
            </div>
        </div>

        {{template "cpu" .CPU}}
        {{template "memory" .}}
        {{template "disk" .}}
        {{template "gpu" .GPU}}
        {{template "network" .}}
        {{template "load" .Load}}

        <div class="footer">
            Generated on {{.GeneratedAt}}
        </div>
    </div>
</body>
</html>
{{end}}

{{define "cpu"}}
        <div class="section">
            <div class="section-title">🖥️ CPU Metrics</div>
            <div class="metrics-row">
                <div class="metric-card">
                    <h3>CPU Usage</h3>
                    <div class="value">{{.Usage}}%</div>
                    <div class="progress-bar">
                        <div class="progress-fill" style="width: {{.Width}}%; background: {{.Color}};">{{.Usage}}%</div>
                    </div>
                </div>
                <div class="metric-card">
                    <h3>CPU Cores</h3>
                    <div class="value">{{.Cores}}</div>
                </div>
                <div class="metric-card">
                    <h3>Temperature</h3>
                    <div class="value">{{.Temperature}}</div>
                </div>
                <div class="metric-card">
                    <h3>Load Average</h3>
                    <div class="value">{{.LoadAverage}}</div>
                </div>
            </div>
            <p class="cpu-model"><strong>Model:</strong> {{.Model}}</p>
        </div>
{{end}}

{{define "memory"}}
        <div class="section">
            <div class="section-title">💾 Memory Metrics</div>
            <div class="metrics-row">
                <div class="metric-card">
                    <h3>Total Memory</h3>
                    <div class="value">{{.Memory.Total}}</div>
                </div>
                <div class="metric-card">
                    <h3>Used Memory</h3>
                    <div class="value">{{.Memory.Used}}</div>
                </div>
                <div class="metric-card">
                    <h3>Available Memory</h3>
                    <div class="value">{{.Memory.Available}}</div>
                </div>
                <div class="metric-card">
                    <h3>Memory Usage</h3>
                    <div class="value">
                        <span class="badge" style="background: {{.Memory.Color}};">{{.Memory.Usage}}%</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill" style="width: {{.Memory.Width}}%; background: {{.Memory.Color}};">{{.Memory.Usage}}%</div>
                    </div>
                </div>
            </div>
{{if .HasSwap}}
            <div class="metrics-row swap-row">
                <div class="metric-card">
                    <h3>Swap Total</h3>
                    <div class="value">{{.Swap.Total}}</div>
                </div>
                <div class="metric-card">
                    <h3>Swap Used</h3>
                    <div class="value">{{.Swap.Used}}</div>
                </div>
                <div class="metric-card">
                    <h3>Swap Usage</h3>
                    <div class="value">
                        <span class="badge" style="background: {{.Swap.Color}};">{{.Swap.Usage}}%</span>
                    </div>
                    <div class="progress-bar">
                        <div class="progress-fill" style="width: {{.Swap.Width}}%; background: {{.Swap.Color}};">{{.Swap.Usage}}%</div>
                    </div>
                </div>
            </div>
{{end}}
        </div>
{{end}}

{{define "disk"}}
        <div class="section">
            <div class="section-title">💿 Disk Metrics</div>
{{if .Disks}}
            <table>
                <thead>
                    <tr>
                        <th>Filesystem</th>
                        <th>Size</th>
                        <th>Used</th>
                        <th>Available</th>
                        <th>Usage %</th>
                    </tr>
                </thead>
                <tbody>
{{range .Disks}}
                    <tr>
                        <td>{{.Filesystem}}</td>
                        <td>{{.Size}}</td>
                        <td>{{.Used}}</td>
                        <td>{{.Available}}</td>
                        <td><span class="badge" style="background: {{.Color}};">{{.Usage}}%</span></td>
                    </tr>
{{end}}
                </tbody>
            </table>
{{else}}
            <p class="placeholder">No disk information available</p>
{{end}}
        </div>
{{end}}

{{define "gpu"}}
        <div class="section">
            <div class="section-title">🎮 GPU Metrics</div>
            <div class="metrics-row">
                <div class="metric-card">
                    <h3>GPU Usage</h3>
                    <div class="value">{{.Usage}}</div>
                </div>
                <div class="metric-card">
                    <h3>GPU Temperature</h3>
                    <div class="value">{{.Temperature}}</div>
                </div>
                <div class="metric-card">
                    <h3>GPU Memory</h3>
                    <div class="value">{{.Memory}}</div>
                </div>
            </div>
        </div>
{{end}}

{{define "network"}}
        <div class="section">
            <div class="section-title">🌐 Network Metrics</div>
{{if .Interfaces}}
            <table>
                <thead>
                    <tr>
                        <th>Interface</th>
                        <th>IP Address</th>
                        <th>RX Bytes</th>
                        <th>TX Bytes</th>
                        <th>RX Packets</th>
                        <th>TX Packets</th>
                    </tr>
                </thead>
                <tbody>
{{range .Interfaces}}
                    <tr>
                        <td>{{.Name}}</td>
                        <td>{{.IPAddress}}</td>
                        <td>{{.RxBytes}}</td>
                        <td>{{.TxBytes}}</td>
                        <td>{{.RxPackets}}</td>
                        <td>{{.TxPackets}}</td>
                    </tr>
{{end}}
                </tbody>
            </table>
{{else}}
            <p class="placeholder">No active network interfaces</p>
{{end}}
        </div>
{{end}}

{{define "load"}}
        <div class="section">
            <div class="section-title">⚙️ System Load</div>
            <div class="metrics-row">
                <div class="metric-card">
                    <h3>Load (1 min)</h3>
                    <div class="value">{{.Load1}}</div>
                </div>
                <div class="metric-card">
                    <h3>Load (5 min)</h3>
                    <div class="value">{{.Load5}}</div>
                </div>
                <div class="metric-card">
                    <h3>Load (15 min)</h3>
                    <div class="value">{{.Load15}}</div>
                </div>
                <div class="metric-card">
                    <h3>Uptime</h3>
                    <div class="value">{{.Uptime}}</div>
                </div>
            </div>
        </div>
{{end}}

{{define "styles"}}<style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            padding: 20px;
            min-height: 100vh;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: white;
            border-radius: 10px;
            box-shadow: 0 10px 40px rgba(0,0,0,0.2);
            overflow: hidden;
        }

        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            color: white;
            padding: 30px;
            text-align: center;
        }

        .header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        .info-bar {
            display: flex;
            justify-content: space-around;
            padding: 20px;
            background: #f8f9fa;
            border-bottom: 2px solid #e9ecef;
        }

        .info-item {
            text-align: center;
        }

        .info-item label {
            display: block;
            color: #6c757d;
            font-size: 0.9em;
            margin-bottom: 5px;
        }

        .info-item value {
            display: block;
            font-size: 1.2em;
            font-weight: bold;
            color: #333;
        }

        .section {
            padding: 30px;
            border-bottom: 1px solid #e9ecef;
        }

        .section:last-child {
            border-bottom: none;
        }

        .section-title {
            font-size: 1.8em;
            margin-bottom: 20px;
            color: #667eea;
        }

        .metrics-row {
            display: flex;
            flex-wrap: wrap;
            gap: 20px;
            margin-bottom: 20px;
        }

        .swap-row {
            margin-top: 20px;
        }

        .metric-card {
            flex: 1;
            min-width: 200px;
            background: #f8f9fa;
            padding: 20px;
            border-radius: 8px;
            border-left: 4px solid #667eea;
        }

        .metric-card h3 {
            color: #6c757d;
            font-size: 0.9em;
            margin-bottom: 10px;
        }

        .metric-card .value {
            font-size: 2em;
            font-weight: bold;
            color: #333;
        }

        .cpu-model {
            margin-top: 15px;
            color: #6c757d;
        }

        .progress-bar {
            width: 100%;
            height: 25px;
            background: #e9ecef;
            border-radius: 12px;
            overflow: hidden;
            margin-top: 10px;
        }

        .progress-fill {
            height: 100%;
            border-radius: 12px;
            display: flex;
            align-items: center;
            justify-content: center;
            color: white;
            font-weight: bold;
            font-size: 0.85em;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            margin-top: 20px;
        }

        table th {
            background: #667eea;
            color: white;
            padding: 12px;
            text-align: left;
        }

        table td {
            padding: 12px;
            border-bottom: 1px solid #e9ecef;
        }

        table tr:hover {
            background: #f8f9fa;
        }

        .badge {
            display: inline-block;
            padding: 4px 10px;
            border-radius: 4px;
            color: white;
            font-size: 0.85em;
            font-weight: bold;
        }

        .placeholder {
            color: #6c757d;
        }

        .footer {
            text-align: center;
            padding: 20px;
            background: #f8f9fa;
            color: #6c757d;
        }
</style>{{end}}
`))
