/*
Copyright 2025 The goARRG Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package d3d12

import (
	"math"
	"unsafe"

	"goarrg.com/rhi/dxr/com"
	"goarrg.com/rhi/dxr/dxgi"
)

func (i *GraphicsCommandList) Close() error {
	return com.Check("ID3D12GraphicsCommandList::Close", com.Call(i.vtbl().Close, uintptr(unsafe.Pointer(i))))
}

func (i *GraphicsCommandList) Reset(allocator *CommandAllocator, initialState *PipelineState) error {
	return com.Check("ID3D12GraphicsCommandList::Reset", com.Call(i.vtbl().Reset,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(allocator)),
		uintptr(unsafe.Pointer(initialState)),
	))
}

func (i *GraphicsCommandList) ClearState(pipelineState *PipelineState) {
	com.CallRaw(i.vtbl().ClearState, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(pipelineState)))
}

func (i *GraphicsCommandList) DrawInstanced(vertexCountPerInstance, instanceCount, startVertexLocation, startInstanceLocation uint32) {
	com.CallRaw(i.vtbl().DrawInstanced,
		uintptr(unsafe.Pointer(i)),
		uintptr(vertexCountPerInstance),
		uintptr(instanceCount),
		uintptr(startVertexLocation),
		uintptr(startInstanceLocation),
	)
}

func (i *GraphicsCommandList) DrawIndexedInstanced(indexCountPerInstance, instanceCount, startIndexLocation uint32, baseVertexLocation int32, startInstanceLocation uint32) {
	com.CallRaw(i.vtbl().DrawIndexedInstanced,
		uintptr(unsafe.Pointer(i)),
		uintptr(indexCountPerInstance),
		uintptr(instanceCount),
		uintptr(startIndexLocation),
		uintptr(baseVertexLocation),
		uintptr(startInstanceLocation),
	)
}

func (i *GraphicsCommandList) Dispatch(threadGroupCountX, threadGroupCountY, threadGroupCountZ uint32) {
	com.CallRaw(i.vtbl().Dispatch,
		uintptr(unsafe.Pointer(i)),
		uintptr(threadGroupCountX),
		uintptr(threadGroupCountY),
		uintptr(threadGroupCountZ),
	)
}

func (i *GraphicsCommandList) CopyBufferRegion(dst *Resource, dstOffset uint64, src *Resource, srcOffset, numBytes uint64) {
	com.CallRaw(i.vtbl().CopyBufferRegion,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstOffset),
		uintptr(unsafe.Pointer(src)),
		uintptr(srcOffset),
		uintptr(numBytes),
	)
}

func (i *GraphicsCommandList) CopyTextureRegion(dst *TEXTURE_COPY_LOCATION, dstX, dstY, dstZ uint32, src *TEXTURE_COPY_LOCATION, srcBox *BOX) {
	com.CallRaw(i.vtbl().CopyTextureRegion,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(dstZ),
		uintptr(unsafe.Pointer(src)),
		uintptr(unsafe.Pointer(srcBox)),
	)
}

func (i *GraphicsCommandList) CopyResource(dst, src *Resource) {
	com.CallRaw(i.vtbl().CopyResource,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(unsafe.Pointer(src)),
	)
}

func (i *GraphicsCommandList) CopyTiles(tiledResource *Resource, regionStart *TILED_RESOURCE_COORDINATE, regionSize *TILE_REGION_SIZE, buffer *Resource, bufferStartOffsetInBytes uint64, flags TILE_COPY_FLAGS) {
	com.CallRaw(i.vtbl().CopyTiles,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(tiledResource)),
		uintptr(unsafe.Pointer(regionStart)),
		uintptr(unsafe.Pointer(regionSize)),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(bufferStartOffsetInBytes),
		uintptr(flags),
	)
}

func (i *GraphicsCommandList) ResolveSubresource(dst *Resource, dstSubresource uint32, src *Resource, srcSubresource uint32, format dxgi.FORMAT) {
	com.CallRaw(i.vtbl().ResolveSubresource,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstSubresource),
		uintptr(unsafe.Pointer(src)),
		uintptr(srcSubresource),
		uintptr(format),
	)
}

func (i *GraphicsCommandList) IASetPrimitiveTopology(topology PRIMITIVE_TOPOLOGY) {
	com.CallRaw(i.vtbl().IASetPrimitiveTopology, uintptr(unsafe.Pointer(i)), uintptr(topology))
}

func (i *GraphicsCommandList) RSSetViewports(viewports []VIEWPORT) {
	com.CallRaw(i.vtbl().RSSetViewports,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(viewports)),
		uintptr(unsafe.Pointer(unsafe.SliceData(viewports))),
	)
}

func (i *GraphicsCommandList) RSSetScissorRects(rects []RECT) {
	com.CallRaw(i.vtbl().RSSetScissorRects,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(rects))),
	)
}

// OMSetBlendFactor takes nil to reset the factor to {1, 1, 1, 1}.
func (i *GraphicsCommandList) OMSetBlendFactor(blendFactor *[4]float32) {
	com.CallRaw(i.vtbl().OMSetBlendFactor, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(blendFactor)))
}

func (i *GraphicsCommandList) OMSetStencilRef(stencilRef uint32) {
	com.CallRaw(i.vtbl().OMSetStencilRef, uintptr(unsafe.Pointer(i)), uintptr(stencilRef))
}

func (i *GraphicsCommandList) SetPipelineState(pipelineState *PipelineState) {
	com.CallRaw(i.vtbl().SetPipelineState, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(pipelineState)))
}

func (i *GraphicsCommandList) ResourceBarrier(barriers []RESOURCE_BARRIER) {
	com.CallRaw(i.vtbl().ResourceBarrier,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(barriers)),
		uintptr(unsafe.Pointer(unsafe.SliceData(barriers))),
	)
}

func (i *GraphicsCommandList) ExecuteBundle(bundle *GraphicsCommandList) {
	com.CallRaw(i.vtbl().ExecuteBundle, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(bundle)))
}

func (i *GraphicsCommandList) SetDescriptorHeaps(heaps []*DescriptorHeap) {
	com.CallRaw(i.vtbl().SetDescriptorHeaps,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(heaps)),
		uintptr(unsafe.Pointer(unsafe.SliceData(heaps))),
	)
}

func (i *GraphicsCommandList) SetComputeRootSignature(rootSignature *RootSignature) {
	com.CallRaw(i.vtbl().SetComputeRootSignature, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(rootSignature)))
}

func (i *GraphicsCommandList) SetGraphicsRootSignature(rootSignature *RootSignature) {
	com.CallRaw(i.vtbl().SetGraphicsRootSignature, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(rootSignature)))
}

func (i *GraphicsCommandList) SetComputeRootDescriptorTable(rootParameterIndex uint32, baseDescriptor GPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().SetComputeRootDescriptorTable, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(baseDescriptor.Ptr))
}

func (i *GraphicsCommandList) SetGraphicsRootDescriptorTable(rootParameterIndex uint32, baseDescriptor GPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().SetGraphicsRootDescriptorTable, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(baseDescriptor.Ptr))
}

func (i *GraphicsCommandList) SetComputeRoot32BitConstant(rootParameterIndex, srcData, destOffsetIn32BitValues uint32) {
	com.CallRaw(i.vtbl().SetComputeRoot32BitConstant,
		uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex),
		uintptr(srcData),
		uintptr(destOffsetIn32BitValues),
	)
}

func (i *GraphicsCommandList) SetGraphicsRoot32BitConstant(rootParameterIndex, srcData, destOffsetIn32BitValues uint32) {
	com.CallRaw(i.vtbl().SetGraphicsRoot32BitConstant,
		uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex),
		uintptr(srcData),
		uintptr(destOffsetIn32BitValues),
	)
}

func (i *GraphicsCommandList) SetComputeRoot32BitConstants(rootParameterIndex, num32BitValuesToSet uint32, srcData unsafe.Pointer, destOffsetIn32BitValues uint32) {
	com.CallRaw(i.vtbl().SetComputeRoot32BitConstants,
		uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex),
		uintptr(num32BitValuesToSet),
		uintptr(srcData),
		uintptr(destOffsetIn32BitValues),
	)
}

func (i *GraphicsCommandList) SetGraphicsRoot32BitConstants(rootParameterIndex, num32BitValuesToSet uint32, srcData unsafe.Pointer, destOffsetIn32BitValues uint32) {
	com.CallRaw(i.vtbl().SetGraphicsRoot32BitConstants,
		uintptr(unsafe.Pointer(i)),
		uintptr(rootParameterIndex),
		uintptr(num32BitValuesToSet),
		uintptr(srcData),
		uintptr(destOffsetIn32BitValues),
	)
}

func (i *GraphicsCommandList) SetComputeRootConstantBufferView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetComputeRootConstantBufferView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) SetGraphicsRootConstantBufferView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetGraphicsRootConstantBufferView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) SetComputeRootShaderResourceView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetComputeRootShaderResourceView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) SetGraphicsRootShaderResourceView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetGraphicsRootShaderResourceView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) SetComputeRootUnorderedAccessView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetComputeRootUnorderedAccessView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) SetGraphicsRootUnorderedAccessView(rootParameterIndex uint32, bufferLocation uint64) {
	com.CallRaw(i.vtbl().SetGraphicsRootUnorderedAccessView, uintptr(unsafe.Pointer(i)), uintptr(rootParameterIndex), uintptr(bufferLocation))
}

func (i *GraphicsCommandList) IASetIndexBuffer(view *INDEX_BUFFER_VIEW) {
	com.CallRaw(i.vtbl().IASetIndexBuffer, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(view)))
}

func (i *GraphicsCommandList) IASetVertexBuffers(startSlot uint32, views []VERTEX_BUFFER_VIEW) {
	com.CallRaw(i.vtbl().IASetVertexBuffers,
		uintptr(unsafe.Pointer(i)),
		uintptr(startSlot),
		uintptr(len(views)),
		uintptr(unsafe.Pointer(unsafe.SliceData(views))),
	)
}

func (i *GraphicsCommandList) SOSetTargets(startSlot uint32, views []STREAM_OUTPUT_BUFFER_VIEW) {
	com.CallRaw(i.vtbl().SOSetTargets,
		uintptr(unsafe.Pointer(i)),
		uintptr(startSlot),
		uintptr(len(views)),
		uintptr(unsafe.Pointer(unsafe.SliceData(views))),
	)
}

// OMSetRenderTargets keeps the native form: with singleHandleToDescriptorRange
// the first handle starts a contiguous range of numRenderTargetDescriptors.
func (i *GraphicsCommandList) OMSetRenderTargets(numRenderTargetDescriptors uint32, renderTargetDescriptors *CPU_DESCRIPTOR_HANDLE, singleHandleToDescriptorRange bool, depthStencilDescriptor *CPU_DESCRIPTOR_HANDLE) {
	com.CallRaw(i.vtbl().OMSetRenderTargets,
		uintptr(unsafe.Pointer(i)),
		uintptr(numRenderTargetDescriptors),
		uintptr(unsafe.Pointer(renderTargetDescriptors)),
		uintptr(com.BoolOf(singleHandleToDescriptorRange)),
		uintptr(unsafe.Pointer(depthStencilDescriptor)),
	)
}

func (i *GraphicsCommandList) ClearDepthStencilView(depthStencilView CPU_DESCRIPTOR_HANDLE, clearFlags CLEAR_FLAGS, depth float32, stencil uint8, rects []RECT) {
	com.CallRaw(i.vtbl().ClearDepthStencilView,
		uintptr(unsafe.Pointer(i)),
		depthStencilView.Ptr,
		uintptr(clearFlags),
		uintptr(math.Float32bits(depth)),
		uintptr(stencil),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(rects))),
	)
}

func (i *GraphicsCommandList) ClearRenderTargetView(renderTargetView CPU_DESCRIPTOR_HANDLE, colorRGBA *[4]float32, rects []RECT) {
	com.CallRaw(i.vtbl().ClearRenderTargetView,
		uintptr(unsafe.Pointer(i)),
		renderTargetView.Ptr,
		uintptr(unsafe.Pointer(colorRGBA)),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(rects))),
	)
}

func (i *GraphicsCommandList) ClearUnorderedAccessViewUint(viewGPUHandleInCurrentHeap GPU_DESCRIPTOR_HANDLE, viewCPUHandle CPU_DESCRIPTOR_HANDLE, resource *Resource, values *[4]uint32, rects []RECT) {
	com.CallRaw(i.vtbl().ClearUnorderedAccessViewUint,
		uintptr(unsafe.Pointer(i)),
		uintptr(viewGPUHandleInCurrentHeap.Ptr),
		viewCPUHandle.Ptr,
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(values)),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(rects))),
	)
}

func (i *GraphicsCommandList) ClearUnorderedAccessViewFloat(viewGPUHandleInCurrentHeap GPU_DESCRIPTOR_HANDLE, viewCPUHandle CPU_DESCRIPTOR_HANDLE, resource *Resource, values *[4]float32, rects []RECT) {
	com.CallRaw(i.vtbl().ClearUnorderedAccessViewFloat,
		uintptr(unsafe.Pointer(i)),
		uintptr(viewGPUHandleInCurrentHeap.Ptr),
		viewCPUHandle.Ptr,
		uintptr(unsafe.Pointer(resource)),
		uintptr(unsafe.Pointer(values)),
		uintptr(len(rects)),
		uintptr(unsafe.Pointer(unsafe.SliceData(rects))),
	)
}

func (i *GraphicsCommandList) DiscardResource(resource *Resource, region *DISCARD_REGION) {
	com.CallRaw(i.vtbl().DiscardResource, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(resource)), uintptr(unsafe.Pointer(region)))
}

func (i *GraphicsCommandList) BeginQuery(queryHeap *QueryHeap, queryType QUERY_TYPE, index uint32) {
	com.CallRaw(i.vtbl().BeginQuery, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(queryHeap)), uintptr(queryType), uintptr(index))
}

func (i *GraphicsCommandList) EndQuery(queryHeap *QueryHeap, queryType QUERY_TYPE, index uint32) {
	com.CallRaw(i.vtbl().EndQuery, uintptr(unsafe.Pointer(i)), uintptr(unsafe.Pointer(queryHeap)), uintptr(queryType), uintptr(index))
}

func (i *GraphicsCommandList) ResolveQueryData(queryHeap *QueryHeap, queryType QUERY_TYPE, startIndex, numQueries uint32, destinationBuffer *Resource, alignedDestinationBufferOffset uint64) {
	com.CallRaw(i.vtbl().ResolveQueryData,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(queryHeap)),
		uintptr(queryType),
		uintptr(startIndex),
		uintptr(numQueries),
		uintptr(unsafe.Pointer(destinationBuffer)),
		uintptr(alignedDestinationBufferOffset),
	)
}

func (i *GraphicsCommandList) SetPredication(buffer *Resource, alignedBufferOffset uint64, operation PREDICATION_OP) {
	com.CallRaw(i.vtbl().SetPredication,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(buffer)),
		uintptr(alignedBufferOffset),
		uintptr(operation),
	)
}

func (i *GraphicsCommandList) SetMarker(metadata uint32, data unsafe.Pointer, size uint32) {
	com.CallRaw(i.vtbl().SetMarker, uintptr(unsafe.Pointer(i)), uintptr(metadata), uintptr(data), uintptr(size))
}

func (i *GraphicsCommandList) BeginEvent(metadata uint32, data unsafe.Pointer, size uint32) {
	com.CallRaw(i.vtbl().BeginEvent, uintptr(unsafe.Pointer(i)), uintptr(metadata), uintptr(data), uintptr(size))
}

func (i *GraphicsCommandList) EndEvent() {
	com.CallRaw(i.vtbl().EndEvent, uintptr(unsafe.Pointer(i)))
}

func (i *GraphicsCommandList) ExecuteIndirect(commandSignature *CommandSignature, maxCommandCount uint32, argumentBuffer *Resource, argumentBufferOffset uint64, countBuffer *Resource, countBufferOffset uint64) {
	com.CallRaw(i.vtbl().ExecuteIndirect,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(commandSignature)),
		uintptr(maxCommandCount),
		uintptr(unsafe.Pointer(argumentBuffer)),
		uintptr(argumentBufferOffset),
		uintptr(unsafe.Pointer(countBuffer)),
		uintptr(countBufferOffset),
	)
}

// AtomicCopyBufferUINT reads len(dependentResources) entries from
// dependentSubresourceRanges.
func (i *GraphicsCommandList1) AtomicCopyBufferUINT(dstBuffer *Resource, dstOffset uint64, srcBuffer *Resource, srcOffset uint64, dependentResources []*Resource, dependentSubresourceRanges []SUBRESOURCE_RANGE_UINT64) {
	com.CallRaw(i.vtbl().AtomicCopyBufferUINT,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dstBuffer)),
		uintptr(dstOffset),
		uintptr(unsafe.Pointer(srcBuffer)),
		uintptr(srcOffset),
		uintptr(len(dependentResources)),
		uintptr(unsafe.Pointer(unsafe.SliceData(dependentResources))),
		uintptr(unsafe.Pointer(unsafe.SliceData(dependentSubresourceRanges))),
	)
}

func (i *GraphicsCommandList1) AtomicCopyBufferUINT64(dstBuffer *Resource, dstOffset uint64, srcBuffer *Resource, srcOffset uint64, dependentResources []*Resource, dependentSubresourceRanges []SUBRESOURCE_RANGE_UINT64) {
	com.CallRaw(i.vtbl().AtomicCopyBufferUINT64,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dstBuffer)),
		uintptr(dstOffset),
		uintptr(unsafe.Pointer(srcBuffer)),
		uintptr(srcOffset),
		uintptr(len(dependentResources)),
		uintptr(unsafe.Pointer(unsafe.SliceData(dependentResources))),
		uintptr(unsafe.Pointer(unsafe.SliceData(dependentSubresourceRanges))),
	)
}

func (i *GraphicsCommandList1) OMSetDepthBounds(minDepth, maxDepth float32) {
	com.CallRaw(i.vtbl().OMSetDepthBounds,
		uintptr(unsafe.Pointer(i)),
		uintptr(math.Float32bits(minDepth)),
		uintptr(math.Float32bits(maxDepth)),
	)
}

func (i *GraphicsCommandList1) SetSamplePositions(numSamplesPerPixel, numPixels uint32, samplePositions *SAMPLE_POSITION) {
	com.CallRaw(i.vtbl().SetSamplePositions,
		uintptr(unsafe.Pointer(i)),
		uintptr(numSamplesPerPixel),
		uintptr(numPixels),
		uintptr(unsafe.Pointer(samplePositions)),
	)
}

func (i *GraphicsCommandList1) ResolveSubresourceRegion(dst *Resource, dstSubresource, dstX, dstY uint32, src *Resource, srcSubresource uint32, srcRect *RECT, format dxgi.FORMAT, resolveMode RESOLVE_MODE) {
	com.CallRaw(i.vtbl().ResolveSubresourceRegion,
		uintptr(unsafe.Pointer(i)),
		uintptr(unsafe.Pointer(dst)),
		uintptr(dstSubresource),
		uintptr(dstX),
		uintptr(dstY),
		uintptr(unsafe.Pointer(src)),
		uintptr(srcSubresource),
		uintptr(unsafe.Pointer(srcRect)),
		uintptr(format),
		uintptr(resolveMode),
	)
}

func (i *GraphicsCommandList1) SetViewInstanceMask(mask uint32) {
	com.CallRaw(i.vtbl().SetViewInstanceMask, uintptr(unsafe.Pointer(i)), uintptr(mask))
}

// WriteBufferImmediate takes nil modes for WRITEBUFFERIMMEDIATE_MODE_DEFAULT,
// otherwise modes must have one entry per parameter.
func (i *GraphicsCommandList2) WriteBufferImmediate(params []WRITEBUFFERIMMEDIATE_PARAMETER, modes []WRITEBUFFERIMMEDIATE_MODE) {
	com.CallRaw(i.vtbl().WriteBufferImmediate,
		uintptr(unsafe.Pointer(i)),
		uintptr(len(params)),
		uintptr(unsafe.Pointer(unsafe.SliceData(params))),
		uintptr(unsafe.Pointer(unsafe.SliceData(modes))),
	)
}
