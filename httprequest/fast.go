/*
 * Copyright 2024 Olezha
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package httprequest

import (
	"github.com/valyala/fasthttp"
)

// FromFast builds a Request from a fasthttp request context. Only the path
// and the raw query string are taken from fasthttp, tokenization and
// decoding follow this package's rules, not fasthttp's parsed args.
func FromFast(ctx *fasthttp.RequestCtx, opts ...Option) (r *Request, err error) {
	r, err = newRequest(string(ctx.Path()), string(ctx.URI().QueryString()), opts)
	return
}
