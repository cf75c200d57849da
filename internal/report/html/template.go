package html

// DashboardTemplate is the self-contained scrap-rate dashboard. Charts
// render client-side from the embedded JSON payloads; no network access
// is needed beyond the chart library CDN.
const DashboardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Scrap Rate Dashboard</title>
    <script src="https://cdnjs.cloudflare.com/ajax/libs/Chart.js/3.9.1/chart.min.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: #f8f9fa;
            min-height: 100vh;
            padding: 20px;
            color: #2c3e50;
        }

        .container {
            max-width: 1600px;
            margin: 0 auto;
            background: #ffffff;
            border-radius: 12px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.1);
            overflow: hidden;
            border: 1px solid #e9ecef;
        }

        .header {
            background: linear-gradient(135deg, #dc2626 0%, #b91c1c 100%);
            color: white;
            padding: 30px 40px;
            border-bottom: 4px solid #ef4444;
        }

        .header-content {
            display: flex;
            justify-content: space-between;
            align-items: center;
            flex-wrap: wrap;
            gap: 20px;
        }

        .header-title {
            font-size: 2.2rem;
            font-weight: 600;
            margin: 0;
        }

        .header-right {
            text-align: right;
            font-size: 0.95rem;
            opacity: 0.9;
        }

        .report-period {
            font-weight: 600;
        }

        .kpi-grid {
            display: grid;
            grid-template-columns: repeat(4, 1fr);
            gap: 25px;
            padding: 30px 40px;
        }

        .kpi-card {
            background: #ffffff;
            border: 1px solid #e9ecef;
            border-left: 4px solid #dc2626;
            border-radius: 8px;
            padding: 20px;
            box-shadow: 0 2px 8px rgba(0, 0, 0, 0.05);
        }

        .kpi-card.quality {
            border-left-color: #16a34a;
        }

        .kpi-label {
            font-size: 0.9rem;
            color: #6c757d;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 8px;
        }

        .kpi-value {
            font-size: 2.2rem;
            font-weight: 700;
            color: #dc2626;
        }

        .kpi-card.quality .kpi-value {
            color: #16a34a;
        }

        .kpi-period {
            font-size: 0.85rem;
            color: #6c757d;
            margin-top: 6px;
        }

        .charts-grid {
            display: grid;
            grid-template-columns: 2fr 1fr;
            gap: 25px;
            padding: 0 40px 30px;
        }

        .chart-container {
            background: #ffffff;
            border: 1px solid #e9ecef;
            border-radius: 8px;
            padding: 20px;
        }

        .chart-container.wide {
            grid-column: 1 / -1;
        }

        .chart-title {
            font-size: 1.1rem;
            font-weight: 600;
            margin-bottom: 15px;
            color: #2c3e50;
        }

        .chart-wrap {
            position: relative;
            height: 320px;
        }

        .tables-grid {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 25px;
            padding: 0 40px 40px;
        }

        .table-container {
            background: #ffffff;
            border: 1px solid #e9ecef;
            border-radius: 8px;
            padding: 20px;
            overflow-x: auto;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 0.9rem;
        }

        th {
            background: #f8f9fa;
            text-align: left;
            padding: 10px 12px;
            border-bottom: 2px solid #dc2626;
            text-transform: uppercase;
            font-size: 0.8rem;
            letter-spacing: 0.5px;
            color: #6c757d;
        }

        td {
            padding: 10px 12px;
            border-bottom: 1px solid #e9ecef;
        }

        .rate-bad {
            color: #dc2626;
            font-weight: 600;
        }

        .rate-good {
            color: #16a34a;
            font-weight: 600;
        }

        footer {
            padding: 20px 40px;
            background: #f8f9fa;
            color: #6c757d;
            font-size: 0.85rem;
            border-top: 1px solid #e9ecef;
        }

        @media (max-width: 1000px) {
            .kpi-grid { grid-template-columns: repeat(2, 1fr); }
            .charts-grid, .tables-grid { grid-template-columns: 1fr; }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <div class="header-content">
                <h1 class="header-title">🏭 Scrap Rate Dashboard</h1>
                <div class="header-right">
                    <div>Generated {{.GeneratedAt}}</div>
                    <div class="report-period">{{.DateRange}}</div>
                </div>
            </div>
        </div>

        <div class="kpi-grid">
            <div class="kpi-card">
                <div class="kpi-label">Overall Scrap Rate</div>
                <div class="kpi-value">{{printf "%.2f" .ScrapRate}}%</div>
                <div class="kpi-period">{{.TotalNOK}} NOK parts</div>
            </div>
            <div class="kpi-card quality">
                <div class="kpi-label">Quality Rate</div>
                <div class="kpi-value">{{printf "%.2f" .QualityRate}}%</div>
                <div class="kpi-period">{{.TotalOK}} OK parts</div>
            </div>
            <div class="kpi-card">
                <div class="kpi-label">Parts Checked</div>
                <div class="kpi-value">{{.TotalChecked}}</div>
                <div class="kpi-period">{{.TotalRecords}} inspection records</div>
            </div>
            <div class="kpi-card">
                <div class="kpi-label">Daily Rate Spread</div>
                <div class="kpi-value">{{printf "%.2f" .Rates.Mean}}%</div>
                <div class="kpi-period">mean over {{.Rates.Days}} days, peak {{printf "%.2f" .Rates.Max}}%, σ {{printf "%.2f" .Rates.StdDev}}</div>
            </div>
        </div>

        <div class="charts-grid">
            <div class="chart-container wide">
                <h3 class="chart-title">Scrap Rate Trend</h3>
                <div class="chart-wrap"><canvas id="trendChart"></canvas></div>
            </div>
            <div class="chart-container">
                <h3 class="chart-title">Scrap Rate by Machine</h3>
                <div class="chart-wrap"><canvas id="machineChart"></canvas></div>
            </div>
            <div class="chart-container">
                <h3 class="chart-title">NOK by Category</h3>
                <div class="chart-wrap"><canvas id="categoryChart"></canvas></div>
            </div>
            <div class="chart-container wide">
                <h3 class="chart-title">Last {{.Rates.Days}} Days</h3>
                <div class="chart-wrap"><canvas id="dailyChart"></canvas></div>
            </div>
            <div class="chart-container wide">
                <h3 class="chart-title">Worst Part Numbers by NOK</h3>
                <div class="chart-wrap"><canvas id="partChart"></canvas></div>
            </div>
        </div>

        <div class="tables-grid">
            <div class="table-container">
                <h3 class="chart-title">Machines</h3>
                <table>
                    <thead>
                        <tr><th>Machine</th><th>Checked</th><th>NOK</th><th>Scrap Rate</th><th>Records</th></tr>
                    </thead>
                    <tbody>
                        {{range .Machines}}
                        <tr>
                            <td>{{.Key}}</td>
                            <td>{{printf "%.0f" .TotalChecked}}</td>
                            <td>{{printf "%.0f" .TotalNOK}}</td>
                            <td class="rate-bad">{{printf "%.2f" .ScrapRate}}%</td>
                            <td>{{.RecordCount}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            <div class="table-container">
                <h3 class="chart-title">Inspectors</h3>
                <table>
                    <thead>
                        <tr><th>Inspector</th><th>Checked</th><th>NOK</th><th>Scrap Rate</th><th>Records</th></tr>
                    </thead>
                    <tbody>
                        {{range .Inspectors}}
                        <tr>
                            <td>{{.Key}}</td>
                            <td>{{printf "%.0f" .TotalChecked}}</td>
                            <td>{{printf "%.0f" .TotalNOK}}</td>
                            <td class="rate-bad">{{printf "%.2f" .ScrapRate}}%</td>
                            <td>{{.RecordCount}}</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            <div class="table-container">
                <h3 class="chart-title">Weekly Rollup</h3>
                <table>
                    <thead>
                        <tr><th>Week</th><th>Checked</th><th>NOK</th><th>Scrap Rate</th><th>Quality Rate</th></tr>
                    </thead>
                    <tbody>
                        {{range .Weekly}}
                        <tr>
                            <td>{{.Label}}</td>
                            <td>{{printf "%.0f" .TotalChecked}}</td>
                            <td>{{printf "%.0f" .TotalNOK}}</td>
                            <td class="rate-bad">{{printf "%.2f" .ScrapRate}}%</td>
                            <td class="rate-good">{{printf "%.2f" .QualityRate}}%</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
            <div class="table-container">
                <h3 class="chart-title">Monthly Rollup</h3>
                <table>
                    <thead>
                        <tr><th>Month</th><th>Checked</th><th>NOK</th><th>Scrap Rate</th><th>Quality Rate</th></tr>
                    </thead>
                    <tbody>
                        {{range .Monthly}}
                        <tr>
                            <td>{{.Label}}</td>
                            <td>{{printf "%.0f" .TotalChecked}}</td>
                            <td>{{printf "%.0f" .TotalNOK}}</td>
                            <td class="rate-bad">{{printf "%.2f" .ScrapRate}}%</td>
                            <td class="rate-good">{{printf "%.2f" .QualityRate}}%</td>
                        </tr>
                        {{end}}
                    </tbody>
                </table>
            </div>
        </div>

        <footer>
            Source: {{.SourceFile}}
        </footer>
    </div>

    <script>
        const trendData = {{.TrendJSON}};
        const machineData = {{.MachineJSON}};
        const categoryData = {{.CategoryJSON}};
        const dailyData = {{.DailyJSON}};
        const partData = {{.PartJSON}};

        const red = '#dc2626';
        const redSoft = 'rgba(220, 38, 38, 0.15)';
        const green = '#16a34a';

        new Chart(document.getElementById('trendChart'), {
            type: 'line',
            data: {
                labels: trendData.labels,
                datasets: [{
                    label: 'Scrap Rate (%)',
                    data: trendData.scrap_rates,
                    borderColor: red,
                    backgroundColor: redSoft,
                    fill: true,
                    tension: 0.3,
                    pointRadius: 3
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                scales: { y: { beginAtZero: true } }
            }
        });

        const machineLabels = Object.keys(machineData);
        new Chart(document.getElementById('machineChart'), {
            type: 'bar',
            data: {
                labels: machineLabels,
                datasets: [{
                    label: 'Scrap Rate (%)',
                    data: machineLabels.map(m => machineData[m].scrap_rate),
                    backgroundColor: red
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                indexAxis: 'y',
                scales: { x: { beginAtZero: true } }
            }
        });

        new Chart(document.getElementById('categoryChart'), {
            type: 'doughnut',
            data: {
                labels: categoryData.labels,
                datasets: [{
                    data: categoryData.values,
                    backgroundColor: ['#dc2626', '#ef4444', '#f87171', '#fca5a5', '#fecaca', '#b91c1c', '#991b1b']
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false
            }
        });

        new Chart(document.getElementById('dailyChart'), {
            type: 'bar',
            data: {
                labels: dailyData.map(d => d.key),
                datasets: [
                    {
                        label: 'Scrap Rate (%)',
                        data: dailyData.map(d => d.scrap_rate),
                        backgroundColor: red,
                        yAxisID: 'y'
                    },
                    {
                        label: 'Parts Checked',
                        data: dailyData.map(d => d.total_checked),
                        backgroundColor: 'rgba(44, 62, 80, 0.25)',
                        yAxisID: 'volume'
                    }
                ]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                scales: {
                    y: { beginAtZero: true, position: 'left' },
                    volume: { beginAtZero: true, position: 'right', grid: { drawOnChartArea: false } }
                }
            }
        });
        const partEntries = Object.entries(partData)
            .sort((a, b) => b[1].total_suspecte - a[1].total_suspecte)
            .slice(0, 10);
        new Chart(document.getElementById('partChart'), {
            type: 'bar',
            data: {
                labels: partEntries.map(e => e[0]),
                datasets: [{
                    label: 'NOK Parts',
                    data: partEntries.map(e => e[1].total_suspecte),
                    backgroundColor: '#b91c1c'
                }]
            },
            options: {
                responsive: true,
                maintainAspectRatio: false,
                indexAxis: 'y',
                scales: { x: { beginAtZero: true } }
            }
        });
    </script>
</body>
</html>
`
