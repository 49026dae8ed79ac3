package view

// stylesheet is inlined into the page head. The campaign list is rendered
// twice; the media query picks the card list below 640px and the table
// above it.
const stylesheet = `
*{box-sizing:border-box}
body{margin:0;font-family:system-ui,-apple-system,sans-serif;background:#f9fafb;color:#111827}
main{max-width:80rem;margin:0 auto;padding:1rem}
header h1{font-size:1.5rem;margin:0 0 .5rem}
header p{color:#4b5563;margin:0 0 1.5rem;font-size:.875rem}
.grid{display:grid;grid-template-columns:1fr;gap:1.5rem}
.panel{background:#fff;border:1px solid #e5e7eb;border-radius:.5rem;padding:1rem}
.panel h2{font-size:1.125rem;margin:0 0 1rem}
.panel-head{display:flex;justify-content:space-between;align-items:baseline}
.form-panel{order:1}
.list-panel{order:2}
.banner{display:flex;justify-content:space-between;margin-bottom:1.5rem;padding:1rem;background:#fef2f2;border:1px solid #fecaca;color:#b91c1c;border-radius:.375rem}
.banner button{background:none;border:0;color:#ef4444;cursor:pointer}
.campaign-form{display:flex;flex-direction:column;gap:.5rem}
.campaign-form input{padding:.5rem;border:1px solid #d1d5db;border-radius:.375rem}
.btn{display:inline-block;padding:.5rem 1rem;border:1px solid #d1d5db;border-radius:.375rem;background:#fff;color:#111827;text-decoration:none;cursor:pointer;font-size:.875rem}
.btn[disabled]{opacity:.5;cursor:not-allowed}
.btn-sm{padding:.25rem .75rem}
.btn-primary{background:#111827;color:#fff;border-color:#111827}
.btn-danger{background:#dc2626;color:#fff;border-color:#dc2626}
.status{display:inline-flex;padding:.125rem .625rem;border-radius:9999px;font-size:.75rem;font-weight:500}
.status-good{color:#16a34a;background:#f0fdf4}
.status-caution{color:#ca8a04;background:#fefce8}
.status-danger{color:#dc2626;background:#fef2f2}
.status-neutral{color:#4b5563;background:#f9fafb}
.campaign-table{display:none;border:1px solid #e5e7eb;border-radius:.375rem;overflow-x:auto}
.campaign-table table{width:100%;border-collapse:collapse}
.campaign-table th,.campaign-table td{padding:.75rem;text-align:left;border-bottom:1px solid #e5e7eb}
.campaign-table .actions{width:100px}
.campaign-table .name{font-weight:500}
.empty{text-align:center;padding:2rem;color:#6b7280;list-style:none}
.campaign-cards{list-style:none;margin:0;padding:0;display:flex;flex-direction:column;gap:.75rem}
.card{border:1px solid #e5e7eb;border-radius:.375rem;padding:.75rem}
.card-head{display:flex;justify-content:space-between;align-items:center}
.card dl{display:grid;grid-template-columns:auto 1fr;gap:.25rem 1rem;margin:.75rem 0}
.card dt{color:#6b7280}
.loading{text-align:center;padding:2rem 0;color:#4b5563}
.spinner{width:2rem;height:2rem;margin:0 auto;border-radius:50%;border-bottom:2px solid #111827;animation:spin 1s linear infinite}
@keyframes spin{to{transform:rotate(360deg)}}
.dialog-backdrop{position:fixed;inset:0;background:rgba(0,0,0,.5);display:flex;align-items:center;justify-content:center}
.dialog{background:#fff;border-radius:.5rem;padding:1.5rem;max-width:28rem;width:calc(100% - 2rem)}
.dialog-actions{display:flex;justify-content:flex-end;gap:.5rem}
@media (min-width:640px){
  main{padding:1.5rem}
  header h1{font-size:1.875rem}
  .campaign-cards{display:none}
  .campaign-table{display:block}
}
@media (min-width:1024px){
  main{padding:2rem}
  .grid{grid-template-columns:2fr 1fr;gap:2rem}
  .list-panel{order:1}
  .form-panel{order:2}
}
`
